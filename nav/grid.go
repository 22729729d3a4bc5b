package nav

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const defaultMaxNodes = 20000

// Grid is a walkable-cell map laid over the X/Z ground plane. Cell (0,0)
// starts at Origin; all navigable points sit at Origin's height.
type Grid struct {
	Width    int
	Depth    int
	CellSize float64
	Origin   mgl64.Vec3
	MaxNodes int

	blocked []bool
}

func NewGrid(width, depth int, cellSize float64, origin mgl64.Vec3) *Grid {
	if width < 0 {
		width = 0
	}
	if depth < 0 {
		depth = 0
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{
		Width:    width,
		Depth:    depth,
		CellSize: cellSize,
		Origin:   origin,
		MaxNodes: defaultMaxNodes,
		blocked:  make([]bool, width*depth),
	}
}

func (g *Grid) inside(x, z int) bool {
	return x >= 0 && z >= 0 && x < g.Width && z < g.Depth
}

// Block marks a cell as not walkable.
func (g *Grid) Block(x, z int) {
	if g.inside(x, z) {
		g.blocked[z*g.Width+x] = true
	}
}

// BlockBox blocks every cell whose centre lies within the X/Z rectangle
// between min and max grown by pad (usually the agent radius).
func (g *Grid) BlockBox(min, max mgl64.Vec3, pad float64) {
	lx, hx := math.Min(min[0], max[0])-pad, math.Max(min[0], max[0])+pad
	lz, hz := math.Min(min[2], max[2])-pad, math.Max(min[2], max[2])+pad
	for z := 0; z < g.Depth; z++ {
		for x := 0; x < g.Width; x++ {
			c := g.Center(x, z)
			if c[0] >= lx && c[0] <= hx && c[2] >= lz && c[2] <= hz {
				g.blocked[z*g.Width+x] = true
			}
		}
	}
}

func (g *Grid) Walkable(x, z int) bool {
	return g.inside(x, z) && !g.blocked[z*g.Width+x]
}

// Cell returns the cell containing p.
func (g *Grid) Cell(p mgl64.Vec3) (x, z int, ok bool) {
	x = int(math.Floor((p[0] - g.Origin[0]) / g.CellSize))
	z = int(math.Floor((p[2] - g.Origin[2]) / g.CellSize))
	return x, z, g.inside(x, z)
}

// Center returns the world-space centre of a cell.
func (g *Grid) Center(x, z int) mgl64.Vec3 {
	return mgl64.Vec3{
		g.Origin[0] + (float64(x)+0.5)*g.CellSize,
		g.Origin[1],
		g.Origin[2] + (float64(z)+0.5)*g.CellSize,
	}
}

// SamplePosition finds the navigable point nearest to p within maxDistance
// on the ground plane. A point already over a walkable cell is returned
// as is, dropped to the grid height.
func (g *Grid) SamplePosition(p mgl64.Vec3, maxDistance float64) (mgl64.Vec3, bool) {
	if maxDistance < 0 {
		return mgl64.Vec3{}, false
	}
	cx, cz, _ := g.Cell(p)
	if g.Walkable(cx, cz) {
		return mgl64.Vec3{p[0], g.Origin[1], p[2]}, true
	}

	flat := mgl64.Vec3{p[0], g.Origin[1], p[2]}
	rings := int(math.Ceil(maxDistance/g.CellSize)) + 1
	best := mgl64.Vec3{}
	bestDist := math.Inf(1)
	for r := 1; r <= rings; r++ {
		for z := cz - r; z <= cz+r; z++ {
			for x := cx - r; x <= cx+r; x++ {
				if max(abs(x-cx), abs(z-cz)) != r || !g.Walkable(x, z) {
					continue
				}
				c := g.Center(x, z)
				if d := c.Sub(flat).Len(); d <= maxDistance && d < bestDist {
					best, bestDist = c, d
				}
			}
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FindPath returns the corners from start to goal (start excluded, goal
// last) and the path status. Collinear grid steps are pulled tight
// wherever the straight segment stays on walkable cells.
func (g *Grid) FindPath(start, goal mgl64.Vec3) ([]mgl64.Vec3, PathStatus) {
	sx, sz, ok := g.Cell(start)
	if !ok || !g.Walkable(sx, sz) {
		return nil, PathInvalid
	}
	gx, gz, _ := g.Cell(goal)
	nodes, complete := AStar(sx, sz, gx, gz, g.Width, g.Depth, func(x, z int) bool {
		return !g.Walkable(x, z)
	}, g.MaxNodes)
	if len(nodes) == 0 {
		return nil, PathInvalid
	}

	points := make([]mgl64.Vec3, 0, len(nodes))
	for _, n := range nodes[1:] {
		points = append(points, g.Center(n.X, n.Y))
	}
	status := PathPartial
	end := g.Center(nodes[len(nodes)-1].X, nodes[len(nodes)-1].Y)
	if complete {
		status = PathComplete
		end = mgl64.Vec3{goal[0], g.Origin[1], goal[2]}
	}
	if len(points) == 0 {
		points = append(points, end)
	} else {
		points[len(points)-1] = end
	}

	from := mgl64.Vec3{start[0], g.Origin[1], start[2]}
	return g.simplify(from, points), status
}

func (g *Grid) simplify(from mgl64.Vec3, points []mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, len(points))
	anchor := from
	for i := 0; i < len(points); i++ {
		j := i
		for j+1 < len(points) && g.clear(anchor, points[j+1]) {
			j++
		}
		out = append(out, points[j])
		anchor = points[j]
		i = j
	}
	return out
}

// clear samples the segment at quarter-cell steps.
func (g *Grid) clear(a, b mgl64.Vec3) bool {
	d := b.Sub(a)
	steps := int(math.Ceil(d.Len()/(g.CellSize*0.25))) + 1
	for i := 0; i <= steps; i++ {
		p := a.Add(d.Mul(float64(i) / float64(steps)))
		x, z, _ := g.Cell(p)
		if !g.Walkable(x, z) {
			return false
		}
	}
	return true
}
