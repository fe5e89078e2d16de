package wifi

import (
	"github.com/paulmach/orb"
)

// RadarPing Single directional reading: which device was heard and at what
// compass bearing.
type RadarPing struct {
	DeviceID string
	Azimuth  float64
}

// RadarObservation All pings taken from one vantage point.
type RadarObservation struct {
	At    orb.Point
	Pings []RadarPing
}

// RadarLine Bearing line on the plane: vantage point plus unit direction.
type RadarLine struct {
	Origin    orb.Point
	Direction orb.Point
}

// GroupRadarLines Regroups observations by device. Every (device, azimuth)
// pair becomes a bearing line; per-device order follows the order of
// observations and of pings inside each observation.
func GroupRadarLines(observations []RadarObservation) map[string][]RadarLine {
	lines := make(map[string][]RadarLine)
	for _, observation := range observations {
		for _, ping := range observation.Pings {
			lines[ping.DeviceID] = append(lines[ping.DeviceID], RadarLine{
				Origin:    observation.At,
				Direction: AzimuthToVector(ping.Azimuth),
			})
		}
	}
	return lines
}
