package wifi

import (
	"sort"

	"github.com/paulmach/orb"
)

// LocateDevice Intersects bearing lines to pin the device position. The first
// line anchors the search and the first remaining line crossing the anchor
// wins; later pairs are not inspected, so this is a greedy first-match pick,
// not a best fit. Fewer than two lines, or no line crossing the anchor,
// leaves the device undetermined (second result false).
func LocateDevice(lines []RadarLine) (orb.Point, bool) {
	if len(lines) < 2 {
		return orb.Point{}, false
	}
	anchor := lines[0]
	for _, line := range lines[1:] {
		pt, ok := LineIntersection(anchor.Origin, anchor.Direction, line.Origin, line.Direction)
		if ok {
			return pt, true
		}
	}
	return orb.Point{}, false
}

// LocateAll Locates every determinable device. Undetermined devices are left
// out of the result.
func LocateAll(lines map[string][]RadarLine) map[string]orb.Point {
	located := make(map[string]orb.Point, len(lines))
	for deviceID, deviceLines := range lines {
		if pt, ok := LocateDevice(deviceLines); ok {
			located[deviceID] = pt
		}
	}
	return located
}

// ConfirmBuildings Matches located devices against building outlines. Devices
// are swept in sorted ID order to keep the outcome deterministic; each device
// confirms at most one building (the first not yet confirmed outline
// containing it) and a confirmed building is skipped for later devices.
// Returned names keep the input order of buildings.
func ConfirmBuildings(buildings []CityBuilding, located map[string]orb.Point) []string {
	deviceIDs := make([]string, 0, len(located))
	for deviceID := range located {
		deviceIDs = append(deviceIDs, deviceID)
	}
	sort.Strings(deviceIDs)

	confirmed := make([]bool, len(buildings))
	for _, deviceID := range deviceIDs {
		pt := located[deviceID]
		for i := range buildings {
			if confirmed[i] {
				continue
			}
			if buildings[i].ContainsPoint(pt) {
				confirmed[i] = true
				break
			}
		}
	}

	names := []string{}
	for i := range buildings {
		if confirmed[i] {
			names = append(names, buildings[i].Name)
		}
	}
	return names
}
