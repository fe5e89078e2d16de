package wifi

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestGroupRadarLines(t *testing.T) {
	observations := []RadarObservation{
		{
			At: orb.Point{10, 10},
			Pings: []RadarPing{
				{DeviceID: "00:0a:95:9d:68:16", Azimuth: 45},
				{DeviceID: "f8:e4:3b:02:11:aa", Azimuth: 310.2},
			},
		},
		{
			At: orb.Point{20, 10},
			Pings: []RadarPing{
				{DeviceID: "00:0a:95:9d:68:16", Azimuth: 0},
			},
		},
	}
	lines := GroupRadarLines(observations)
	if len(lines) != 2 {
		t.Errorf("Grouping must produce 2 devices, but got %d", len(lines))
	}
	first := lines["00:0a:95:9d:68:16"]
	if len(first) != 2 {
		t.Errorf("First device must have 2 bearing lines, but got %d", len(first))
	}
	if first[0].Origin != (orb.Point{10, 10}) || first[1].Origin != (orb.Point{20, 10}) {
		t.Errorf("Bearing lines must keep the observation order, but got origins %v, %v", first[0].Origin, first[1].Origin)
	}
	expected := AzimuthToVector(45)
	if first[0].Direction != expected {
		t.Errorf("Direction must be %v, but got %v", expected, first[0].Direction)
	}
	if len(lines["f8:e4:3b:02:11:aa"]) != 1 {
		t.Errorf("Second device must have 1 bearing line, but got %d", len(lines["f8:e4:3b:02:11:aa"]))
	}
}

func TestLocateDevice(t *testing.T) {
	// Bearings 45 and 0 degrees from two vantage points cross at (20, 20)
	lines := []RadarLine{
		{Origin: orb.Point{10, 10}, Direction: AzimuthToVector(45)},
		{Origin: orb.Point{20, 10}, Direction: AzimuthToVector(0)},
	}
	pt, ok := LocateDevice(lines)
	if !ok {
		t.Errorf("Two crossing bearing lines must locate the device")
		return
	}
	if math.Abs(pt.X()-20) > 2e-3 || math.Abs(pt.Y()-20) > 2e-3 {
		t.Errorf("Located position must be (20, 20), but got %v", pt)
	}
}

func TestLocateDeviceUndetermined(t *testing.T) {
	if _, ok := LocateDevice([]RadarLine{}); ok {
		t.Errorf("No bearing lines must leave the device undetermined")
	}
	single := []RadarLine{{Origin: orb.Point{10, 10}, Direction: AzimuthToVector(45)}}
	if _, ok := LocateDevice(single); ok {
		t.Errorf("A single bearing line must leave the device undetermined")
	}
	parallel := []RadarLine{
		{Origin: orb.Point{10, 10}, Direction: AzimuthToVector(45)},
		{Origin: orb.Point{20, 10}, Direction: AzimuthToVector(45)},
		{Origin: orb.Point{30, 10}, Direction: AzimuthToVector(45)},
	}
	if _, ok := LocateDevice(parallel); ok {
		t.Errorf("Bearing lines all parallel to the anchor must leave the device undetermined")
	}
}

func TestLocateDeviceGreedyFirstPair(t *testing.T) {
	// The second line is parallel to the anchor and must be skipped; the third
	// crosses the anchor at (0, 10); the fourth would cross at (0, 20) but
	// must never be inspected.
	lines := []RadarLine{
		{Origin: orb.Point{0, 0}, Direction: orb.Point{0, 1}},
		{Origin: orb.Point{5, 5}, Direction: orb.Point{0, 1}},
		{Origin: orb.Point{10, 0}, Direction: orb.Point{-0.7071, 0.7071}},
		{Origin: orb.Point{10, 10}, Direction: orb.Point{-0.7071, 0.7071}},
	}
	pt, ok := LocateDevice(lines)
	if !ok {
		t.Errorf("Device must be located")
		return
	}
	if math.Abs(pt.X()) > 2e-3 || math.Abs(pt.Y()-10) > 2e-3 {
		t.Errorf("Greedy pick must settle on (0, 10), but got %v", pt)
	}
}

func TestLocateAll(t *testing.T) {
	lines := map[string][]RadarLine{
		"aa:aa:aa:aa:aa:aa": {
			{Origin: orb.Point{10, 10}, Direction: AzimuthToVector(45)},
			{Origin: orb.Point{20, 10}, Direction: AzimuthToVector(0)},
		},
		"bb:bb:bb:bb:bb:bb": {
			{Origin: orb.Point{0, 0}, Direction: AzimuthToVector(90)},
		},
	}
	located := LocateAll(lines)
	if len(located) != 1 {
		t.Errorf("Exactly 1 device must be located, but got %d", len(located))
	}
	if _, ok := located["aa:aa:aa:aa:aa:aa"]; !ok {
		t.Errorf("Device aa:aa:aa:aa:aa:aa must be located")
	}
}

func TestConfirmBuildings(t *testing.T) {
	buildings := []CityBuilding{
		NewCityBuilding("Dormitory", []orb.Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}),
		NewCityBuilding("Library", []orb.Point{{20, 0}, {20, 10}, {30, 10}, {30, 0}}),
	}
	located := map[string]orb.Point{
		"aa:aa:aa:aa:aa:aa": {5, 5},
		"bb:bb:bb:bb:bb:bb": {25, 5},
		"cc:cc:cc:cc:cc:cc": {50, 50},
	}
	confirmed := ConfirmBuildings(buildings, located)
	if len(confirmed) != 2 {
		t.Errorf("2 buildings must be confirmed, but got %d", len(confirmed))
	}
	if confirmed[0] != "Dormitory" || confirmed[1] != "Library" {
		t.Errorf("Confirmed names must keep building order, but got %v", confirmed)
	}
}

// TestConfirmBuildingsSkipsConfirmed puts two devices into the same outline:
// the one with the smaller ID confirms it, the other finds every remaining
// outline empty and confirms nothing.
func TestConfirmBuildingsSkipsConfirmed(t *testing.T) {
	buildings := []CityBuilding{
		NewCityBuilding("Dormitory", []orb.Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}),
	}
	located := map[string]orb.Point{
		"bb:bb:bb:bb:bb:bb": {6, 6},
		"aa:aa:aa:aa:aa:aa": {5, 5},
	}
	confirmed := ConfirmBuildings(buildings, located)
	if len(confirmed) != 1 {
		t.Errorf("1 building must be confirmed, but got %d", len(confirmed))
	}
	if confirmed[0] != "Dormitory" {
		t.Errorf("Confirmed building must be Dormitory, but got %s", confirmed[0])
	}
}

func TestConfirmBuildingsNoneLocated(t *testing.T) {
	buildings := []CityBuilding{
		NewCityBuilding("Dormitory", []orb.Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}),
	}
	confirmed := ConfirmBuildings(buildings, map[string]orb.Point{})
	if len(confirmed) != 0 {
		t.Errorf("No located devices must confirm no buildings, but got %v", confirmed)
	}
}
