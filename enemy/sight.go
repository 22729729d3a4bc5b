package enemy

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fireteam/common"
	"github.com/milk9111/fireteam/physics"
)

// LineOfSight casts from eye toward the point aimHeight above targetBase.
// Only a first hit on target, or on something parented to it, counts;
// obstacles, other actors and empty rays do not.
func LineOfSight(q physics.Querier, eye, targetBase mgl64.Vec3, aimHeight float64, target physics.ID, ignore ...physics.ID) bool {
	if q == nil {
		return false
	}
	dest := targetBase.Add(common.Up.Mul(aimHeight))
	dir := dest.Sub(eye)
	dist := dir.Len()
	if dist == 0 {
		return false
	}
	hit, ok := q.Raycast(eye, dir, dist, ignore...)
	if !ok {
		return false
	}
	return q.IsChildOf(hit.ID, target)
}
