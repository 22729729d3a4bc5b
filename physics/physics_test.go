package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaycastHitsNearestFirst(t *testing.T) {
	s := NewSpace()
	wall := s.AddBox(mgl64.Vec3{4, 0, -1}, mgl64.Vec3{5, 0, 1}, 2.5)
	target := s.AddActor(mgl64.Vec3{8, 0, 0}, 0.4, 1.8)

	hit, ok := s.Raycast(mgl64.Vec3{0, 1.6, 0}, mgl64.Vec3{1, 0, 0}, 20)
	require.True(t, ok)
	assert.Equal(t, wall, hit.ID)
	assert.Equal(t, LayerObstacle, hit.Layer)
	assert.InDelta(t, 4.0, hit.Distance, 1e-6)

	hit, ok = s.Raycast(mgl64.Vec3{0, 1.6, 0}, mgl64.Vec3{1, 0, 0}, 20, wall)
	require.True(t, ok)
	assert.Equal(t, target, hit.ID)
	assert.InDelta(t, 7.6, hit.Distance, 1e-6)
}

func TestRaycastPassesOverShortGeometry(t *testing.T) {
	s := NewSpace()
	s.AddBox(mgl64.Vec3{4, 0, -1}, mgl64.Vec3{5, 0, 1}, 1.0)
	target := s.AddActor(mgl64.Vec3{8, 0, 0}, 0.4, 1.8)

	hit, ok := s.Raycast(mgl64.Vec3{0, 1.6, 0}, mgl64.Vec3{1, 0, 0}, 20)
	require.True(t, ok)
	assert.Equal(t, target, hit.ID)

	_, ok = s.RaycastMask(mgl64.Vec3{0, 1.6, 0}, mgl64.Vec3{1, 0, 0}, 20, LayerObstacle)
	assert.False(t, ok)
}

func TestRaycastRespectsMaxDistance(t *testing.T) {
	s := NewSpace()
	s.AddActor(mgl64.Vec3{8, 0, 0}, 0.4, 1.8)

	_, ok := s.Raycast(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, 5)
	assert.False(t, ok)
	_, ok = s.Raycast(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 1, 0}, 5)
	assert.False(t, ok, "vertical rays never hit")
}

func TestSphereCastInflates(t *testing.T) {
	s := NewSpace()
	wall := s.AddBox(mgl64.Vec3{-1, 0, 2}, mgl64.Vec3{1, 0, 3}, 3)

	_, ok := s.Raycast(mgl64.Vec3{1.3, 1.5, 0}, mgl64.Vec3{0, 0, 1}, 5)
	assert.False(t, ok)

	hit, ok := s.SphereCast(mgl64.Vec3{1.3, 1.5, 0}, 0.5, mgl64.Vec3{0, 0, 1}, 5)
	require.True(t, ok)
	assert.Equal(t, wall, hit.ID)
}

func TestMovedActorIsQueriedAtNewPosition(t *testing.T) {
	s := NewSpace()
	a := s.AddActor(mgl64.Vec3{0, 0, 10}, 0.5, 2)
	s.SetPosition(a, mgl64.Vec3{5, 0, 0})

	pos, ok := s.Position(a)
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{5, 0, 0}, pos)

	hit, ok := s.Raycast(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, 10)
	require.True(t, ok)
	assert.Equal(t, a, hit.ID)

	s.Remove(a)
	_, ok = s.Raycast(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, 10)
	assert.False(t, ok)
}

func TestHierarchy(t *testing.T) {
	s := NewSpace()
	body := s.AddActor(mgl64.Vec3{}, 0.4, 1.8)
	head := s.AddActor(mgl64.Vec3{0, 1.5, 0}, 0.2, 0.3)
	other := s.AddActor(mgl64.Vec3{3, 0, 0}, 0.4, 1.8)
	s.SetParent(head, body)

	assert.True(t, s.IsChildOf(head, body))
	assert.True(t, s.IsChildOf(body, body))
	assert.False(t, s.IsChildOf(body, head))
	assert.False(t, s.IsChildOf(other, body))
}

func TestMoveStopsAtWalls(t *testing.T) {
	s := NewSpace()
	s.AddBox(mgl64.Vec3{-5, 0, 2}, mgl64.Vec3{5, 0, 3}, 3)
	a := s.AddActor(mgl64.Vec3{}, 0.5, 2)

	moved := s.Move(a, mgl64.Vec3{0, 0, 1})
	assert.InDelta(t, 1.0, moved[2], 1e-9)

	moved = s.Move(a, mgl64.Vec3{1, 0, 2})
	pos, _ := s.Position(a)
	assert.Less(t, pos[2], 1.5+1e-6, "must not pass into the wall")
	assert.Greater(t, moved[0], 0.5, "tangential motion is kept")
}
