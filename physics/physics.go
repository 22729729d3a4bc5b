// Package physics answers ray and sphere queries against a top-down
// chipmunk space. World X/Z map to chipmunk X/Y; every shape also carries
// a vertical extent so queries can pass over short geometry.
package physics

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// ID names a body in the space. Zero is never issued.
type ID int

// Layer is a bitmask of collision categories.
type Layer uint

const (
	LayerObstacle Layer = 1 << iota
	LayerActor

	LayerAll = LayerObstacle | LayerActor
)

// Hit is the first thing a query touched.
type Hit struct {
	ID       ID
	Layer    Layer
	Distance float64
	Point    mgl64.Vec3
}

// Querier is what gameplay code needs from the physics world.
type Querier interface {
	Raycast(origin, dir mgl64.Vec3, maxDistance float64, ignore ...ID) (Hit, bool)
	SphereCast(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDistance float64, ignore ...ID) (Hit, bool)
	IsChildOf(id, ancestor ID) bool
}

const skin = 0.01

type entry struct {
	id     ID
	body   *cp.Body
	shape  *cp.Shape
	layer  Layer
	radius float64
	base   float64
	height float64
}

// Space owns a chipmunk space that is only ever queried, never stepped.
type Space struct {
	space   *cp.Space
	entries map[ID]*entry
	parents map[ID]ID
	nextID  ID
}

func NewSpace() *Space {
	return &Space{
		space:   cp.NewSpace(),
		entries: make(map[ID]*entry),
		parents: make(map[ID]ID),
	}
}

func (s *Space) issue() ID {
	s.nextID++
	return s.nextID
}

func filterFor(layer Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES)
}

func queryFilter(mask Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
}

func flat(v mgl64.Vec3) cp.Vector {
	return cp.Vector{X: v[0], Y: v[2]}
}

// AddBox adds a static obstacle covering the X/Z rectangle between min and
// max, rising height above min's Y.
func (s *Space) AddBox(min, max mgl64.Vec3, height float64) ID {
	id := s.issue()
	body := s.space.StaticBody
	bb := cp.BB{
		L: math.Min(min[0], max[0]),
		B: math.Min(min[2], max[2]),
		R: math.Max(min[0], max[0]),
		T: math.Max(min[2], max[2]),
	}
	shape := s.space.AddShape(cp.NewBox2(body, bb, 0))
	shape.SetFilter(filterFor(LayerObstacle))
	shape.UserData = id
	s.entries[id] = &entry{id: id, body: body, shape: shape, layer: LayerObstacle, base: min[1], height: height}
	return id
}

// AddActor adds a kinematic upright cylinder whose base sits at pos.
func (s *Space) AddActor(pos mgl64.Vec3, radius, height float64) ID {
	id := s.issue()
	body := s.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(flat(pos))
	shape := s.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetFilter(filterFor(LayerActor))
	shape.UserData = id
	s.entries[id] = &entry{id: id, body: body, shape: shape, layer: LayerActor, radius: radius, base: pos[1], height: height}
	return id
}

// SetParent records that child belongs to parent, so hits on the child
// count as hits on the parent.
func (s *Space) SetParent(child, parent ID) {
	if child == parent {
		return
	}
	s.parents[child] = parent
}

// IsChildOf reports whether id is ancestor or one of its descendants.
func (s *Space) IsChildOf(id, ancestor ID) bool {
	for depth := 0; id != 0 && depth < 64; depth++ {
		if id == ancestor {
			return true
		}
		id = s.parents[id]
	}
	return false
}

func (s *Space) SetPosition(id ID, pos mgl64.Vec3) {
	e, ok := s.entries[id]
	if !ok || e.layer == LayerObstacle {
		return
	}
	e.body.SetPosition(flat(pos))
	e.base = pos[1]
	s.reindex(e)
}

// reindex refreshes the spatial index after a kinematic move; the space
// is never stepped, so nothing else would.
func (s *Space) reindex(e *entry) {
	s.space.RemoveShape(e.shape)
	s.space.AddShape(e.shape)
}

func (s *Space) Position(id ID) (mgl64.Vec3, bool) {
	e, ok := s.entries[id]
	if !ok || e.layer == LayerObstacle {
		return mgl64.Vec3{}, false
	}
	p := e.body.Position()
	return mgl64.Vec3{p.X, e.base, p.Y}, true
}

func (s *Space) Remove(id ID) {
	e, ok := s.entries[id]
	if !ok {
		return
	}
	s.space.RemoveShape(e.shape)
	if e.layer != LayerObstacle {
		s.space.RemoveBody(e.body)
	}
	delete(s.entries, id)
	delete(s.parents, id)
}

func (s *Space) Raycast(origin, dir mgl64.Vec3, maxDistance float64, ignore ...ID) (Hit, bool) {
	return s.cast(origin, 0, dir, maxDistance, LayerAll, ignore)
}

func (s *Space) SphereCast(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDistance float64, ignore ...ID) (Hit, bool) {
	return s.cast(origin, math.Max(radius, 0), dir, maxDistance, LayerAll, ignore)
}

// RaycastMask is Raycast restricted to the given layers.
func (s *Space) RaycastMask(origin, dir mgl64.Vec3, maxDistance float64, mask Layer, ignore ...ID) (Hit, bool) {
	return s.cast(origin, 0, dir, maxDistance, mask, ignore)
}

type candidate struct {
	shape *cp.Shape
	alpha float64
}

func (s *Space) cast(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDistance float64, mask Layer, ignore []ID) (Hit, bool) {
	if maxDistance <= 0 || dir.Len() == 0 {
		return Hit{}, false
	}
	dir = dir.Normalize()
	end := origin.Add(dir.Mul(maxDistance))
	start2, end2 := flat(origin), flat(end)
	if start2.Distance(end2) < 1e-9 {
		return Hit{}, false
	}

	var hits []candidate
	s.space.SegmentQuery(start2, end2, radius, queryFilter(mask), func(shape *cp.Shape, _ cp.Vector, _ cp.Vector, alpha float64, _ interface{}) {
		hits = append(hits, candidate{shape: shape, alpha: alpha})
	}, nil)
	sort.Slice(hits, func(i, j int) bool { return hits[i].alpha < hits[j].alpha })

	for _, c := range hits {
		id, ok := c.shape.UserData.(ID)
		if !ok || contains(ignore, id) {
			continue
		}
		e := s.entries[id]
		if e == nil {
			continue
		}
		point := origin.Add(dir.Mul(c.alpha * maxDistance))
		if point[1]+radius < e.base || point[1]-radius > e.base+e.height {
			continue
		}
		return Hit{ID: id, Layer: e.layer, Distance: c.alpha * maxDistance, Point: point}, true
	}
	return Hit{}, false
}

func contains(ids []ID, id ID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// Move slides an actor by delta on the ground plane, stopping at
// obstacles and keeping the tangential part of the motion. It returns the
// displacement actually applied.
func (s *Space) Move(id ID, delta mgl64.Vec3) mgl64.Vec3 {
	e, ok := s.entries[id]
	if !ok || e.layer == LayerObstacle {
		return mgl64.Vec3{}
	}
	start := e.body.Position()
	step := cp.Vector{X: delta[0], Y: delta[2]}
	pos := start
	for i := 0; i < 2 && step.Length() > 1e-9; i++ {
		info := s.space.SegmentQueryFirst(pos, pos.Add(step), e.radius, queryFilter(LayerObstacle))
		if info.Shape == nil {
			pos = pos.Add(step)
			break
		}
		travel := math.Max(info.Alpha-skin/step.Length(), 0)
		pos = pos.Add(step.Mult(travel))
		rest := step.Mult(1 - travel)
		n := info.Normal
		step = rest.Sub(n.Mult(rest.Dot(n)))
	}
	e.body.SetPosition(pos)
	e.base += delta[1]
	s.reindex(e)
	moved := pos.Sub(start)
	return mgl64.Vec3{moved.X, delta[1], moved.Y}
}
