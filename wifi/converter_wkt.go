package wifi

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// PrepareWKTBuilding returns WKT representation of building outline
func PrepareWKTBuilding(building CityBuilding) string {
	return wkt.MarshalString(orb.Polygon{building.Outline})
}

// PrepareWKTHotspot returns WKT representation of located device position
func PrepareWKTHotspot(pt orb.Point) string {
	return wkt.MarshalString(pt)
}
