package wifi

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	earthR = 20037508.34
)

func epsg4326To3857(lon, lat float64) (float64, float64) {
	x := lon * earthR / 180
	y := math.Log(math.Tan((90+lat)*math.Pi/360)) / (math.Pi / 180)
	y = y * earthR / 180
	return x, y
}

// pointToEuclidean Maps an OSM lon/lat point onto the planar meters the
// geometry primitives work in.
func pointToEuclidean(pt orb.Point) orb.Point {
	euclideanX, euclideanY := epsg4326To3857(pt.Lon(), pt.Lat())
	return orb.Point{euclideanX, euclideanY}
}

// ringToEuclidean Projects a whole outline ring. Returns new slice
func ringToEuclidean(ring orb.Ring) orb.Ring {
	newRing := make(orb.Ring, len(ring))
	for i, pt := range ring {
		newRing[i] = pointToEuclidean(pt)
	}
	return newRing
}
