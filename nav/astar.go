package nav

import (
	"container/heap"
	"math"
)

// PathNode represents a grid cell in an A* path.
type PathNode struct {
	X int
	Y int
}

var neighbors = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// AStar finds a path from start to goal on an 8-way grid. Diagonal steps
// may not cut blocked corners. isBlocked should return true for cells
// that cannot be traversed; maxNodes limits the number of expanded nodes
// to avoid runaway searches.
//
// When the goal cannot be reached the path to the explored cell closest
// to the goal is returned with complete=false.
func AStar(startX, startY, goalX, goalY, width, height int, isBlocked func(x, y int) bool, maxNodes int) (path []PathNode, complete bool) {
	if width <= 0 || height <= 0 {
		return nil, false
	}
	inside := func(x, y int) bool { return x >= 0 && y >= 0 && x < width && y < height }
	blocked := func(x, y int) bool {
		return !inside(x, y) || (isBlocked != nil && isBlocked(x, y))
	}
	if blocked(startX, startY) {
		return nil, false
	}
	if startX == goalX && startY == goalY {
		return []PathNode{{X: startX, Y: startY}}, true
	}

	startIdx := startY*width + startX
	goalIdx := -1
	if inside(goalX, goalY) {
		goalIdx = goalY*width + goalX
	}

	open := &openList{}
	heap.Push(open, openNode{idx: startIdx, f: heuristic(startX, startY, goalX, goalY)})

	cameFrom := make(map[int]int, 128)
	gScore := map[int]float64{startIdx: 0}
	closed := make(map[int]bool, 128)

	bestIdx := startIdx
	bestH := heuristic(startX, startY, goalX, goalY)

	iterations := 0
	for open.Len() > 0 && iterations < maxNodes {
		current := heap.Pop(open).(openNode)
		if closed[current.idx] {
			continue
		}
		closed[current.idx] = true
		iterations++

		if current.idx == goalIdx {
			return reconstructPath(cameFrom, current.idx, startIdx, width), true
		}

		cx, cy := current.idx%width, current.idx/width
		if h := heuristic(cx, cy, goalX, goalY); h < bestH {
			bestH = h
			bestIdx = current.idx
		}

		for _, d := range neighbors {
			nx, ny := cx+d[0], cy+d[1]
			if blocked(nx, ny) {
				continue
			}
			cost := 1.0
			if d[0] != 0 && d[1] != 0 {
				if blocked(cx+d[0], cy) || blocked(cx, cy+d[1]) {
					continue
				}
				cost = math.Sqrt2
			}
			neighborIdx := ny*width + nx
			if closed[neighborIdx] {
				continue
			}
			tentative := gScore[current.idx] + cost
			prev, seen := gScore[neighborIdx]
			if !seen || tentative < prev {
				cameFrom[neighborIdx] = current.idx
				gScore[neighborIdx] = tentative
				heap.Push(open, openNode{idx: neighborIdx, f: tentative + heuristic(nx, ny, goalX, goalY)})
			}
		}
	}

	return reconstructPath(cameFrom, bestIdx, startIdx, width), false
}

func reconstructPath(cameFrom map[int]int, currentIdx, startIdx, width int) []PathNode {
	path := make([]PathNode, 0, 32)
	for {
		path = append(path, PathNode{X: currentIdx % width, Y: currentIdx / width})
		if currentIdx == startIdx {
			break
		}
		prev, ok := cameFrom[currentIdx]
		if !ok {
			return nil
		}
		currentIdx = prev
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// heuristic is the octile distance, admissible for 8-way movement.
func heuristic(x1, y1, x2, y2 int) float64 {
	dx := math.Abs(float64(x1 - x2))
	dy := math.Abs(float64(y1 - y2))
	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

type openNode struct {
	idx int
	f   float64
}

type openList []openNode

func (o openList) Len() int           { return len(o) }
func (o openList) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openList) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }

func (o *openList) Push(x any) { *o = append(*o, x.(openNode)) }

func (o *openList) Pop() any {
	old := *o
	n := old[len(old)-1]
	*o = old[:len(old)-1]
	return n
}
