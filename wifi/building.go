package wifi

import (
	"github.com/paulmach/orb"
)

// CityBuilding Named building footprint on the city plane. The outline ring
// is closed: its first and last vertices are equal.
type CityBuilding struct {
	Name    string
	Outline orb.Ring
}

// NewCityBuilding Creates a building, closing the outline ring when the input
// does not repeat the first vertex.
func NewCityBuilding(name string, points []orb.Point) CityBuilding {
	outline := make(orb.Ring, len(points))
	copy(outline, points)
	if len(outline) > 0 && outline[0] != outline[len(outline)-1] {
		outline = append(outline, outline[0])
	}
	return CityBuilding{Name: name, Outline: outline}
}

// ContainsPoint Crossing-number test: counts outline edges crossed by the
// horizontal ray from pt towards +X, odd count means inside.
//
// Points exactly on the outline get the half-open treatment of the crossing
// rules. For an axis-aligned rectangle that classifies the right and top
// edges (and the corner joining them) as inside, the left and bottom edges
// and the remaining corners as outside.
func (building CityBuilding) ContainsPoint(pt orb.Point) bool {
	crossings := 0
	for i := 1; i < len(building.Outline); i++ {
		if segmentCrossesRightRay(building.Outline[i-1], building.Outline[i], pt) {
			crossings++
		}
	}
	return crossings%2 == 1
}
