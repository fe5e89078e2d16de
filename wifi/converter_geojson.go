package wifi

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

// PrepareGeoJSONBuilding returns GeoJSON representation of building outline
func PrepareGeoJSONBuilding(building CityBuilding) string {
	ring := make([][]float64, len(building.Outline))
	for i := range building.Outline {
		ring[i] = []float64{building.Outline[i].X(), building.Outline[i].Y()}
	}
	b, err := geojson.NewPolygonGeometry([][][]float64{ring}).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// PrepareGeoJSONHotspot returns GeoJSON representation of located device position
func PrepareGeoJSONHotspot(pt orb.Point) string {
	b, err := geojson.NewPointGeometry([]float64{pt.X(), pt.Y()}).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}
