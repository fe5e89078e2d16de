package wifi

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"

	"github.com/paulmach/osm/osmpbf"
)

// BuildingFilter Keeps only wanted values of the OSM 'building' tag. An empty
// tag list accepts every building.
type BuildingFilter struct {
	Tags []string
}

// CheckTag Checks if incoming tag value is represented in the filter
func (filter *BuildingFilter) CheckTag(tag string) bool {
	if filter == nil || len(filter.Tags) == 0 {
		return true
	}
	for i := range filter.Tags {
		if filter.Tags[i] == tag {
			return true
		}
	}
	return false
}

// buildingWay Closed OSM way carrying a 'building' tag
type buildingWay struct {
	id    osm.WayID
	name  string
	nodes []osm.NodeID
}

// ImportBuildingsFromOSMFile Imports building footprints from file of PBF-format (in OSM terms)
/*
	File should have PBF (Protocolbuffer Binary Format) extension according to https://github.com/paulmach/osm
	Outlines are projected to planar meters (EPSG:3857) so the crossing-number
	and line-intersection primitives can treat them as Euclidean.
*/
func ImportBuildingsFromOSMFile(fileName string, filter *BuildingFilter, verbose bool) ([]CityBuilding, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer f.Close()

	scannerWays := osmpbf.New(context.Background(), f, 4)
	defer scannerWays.Close()

	ways := []buildingWay{}
	nodes := make(map[osm.NodeID]orb.Point)
	nodesSeen := make(map[osm.NodeID]struct{})

	if verbose {
		fmt.Printf("Scanning building ways...")
	}
	st := time.Now()
	for scannerWays.Scan() {
		obj := scannerWays.Object()
		if obj.ObjectID().Type() != "way" {
			continue
		}
		way := obj.(*osm.Way)
		tagMap := way.TagMap()
		tag, ok := tagMap["building"]
		if !ok {
			continue
		}
		if !filter.CheckTag(tag) {
			continue
		}
		if len(way.Nodes) < 4 || way.Nodes[0].ID != way.Nodes[len(way.Nodes)-1].ID {
			// Open or degenerate footprint
			continue
		}
		name, ok := tagMap["name"]
		if !ok {
			name = fmt.Sprintf("way/%d", way.ID)
		}
		preparedWay := buildingWay{
			id:    way.ID,
			name:  name,
			nodes: make([]osm.NodeID, 0, len(way.Nodes)),
		}
		for _, wayNode := range way.Nodes {
			preparedWay.nodes = append(preparedWay.nodes, wayNode.ID)
			nodesSeen[wayNode.ID] = struct{}{}
		}
		ways = append(ways, preparedWay)
	}
	if scannerWays.Err() != nil {
		return nil, errors.Wrap(scannerWays.Err(), "Scanner error on Ways")
	}
	if verbose {
		fmt.Printf("Done in %v\n\tBuilding ways: %d\n", time.Since(st), len(ways))
	}

	// Seek file to start
	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking")
	}
	scannerNodes := osmpbf.New(context.Background(), f, 4)
	defer scannerNodes.Close()

	if verbose {
		fmt.Printf("Scanning nodes...")
	}
	st = time.Now()
	for scannerNodes.Scan() {
		obj := scannerNodes.Object()
		if obj.ObjectID().Type() != "node" {
			continue
		}
		node := obj.(*osm.Node)
		if _, ok := nodesSeen[node.ID]; ok {
			delete(nodesSeen, node.ID)
			nodes[node.ID] = orb.Point{node.Lon, node.Lat}
		}
	}
	if scannerNodes.Err() != nil {
		return nil, errors.Wrap(scannerNodes.Err(), "Scanner error on Nodes")
	}
	if verbose {
		fmt.Printf("Done in %v\n\tNodes: %d\n", time.Since(st), len(nodes))
	}

	if verbose {
		fmt.Printf("Preparing buildings...")
	}
	st = time.Now()
	buildings := make([]CityBuilding, 0, len(ways))
	for _, way := range ways {
		outline := make(orb.Ring, 0, len(way.nodes))
		for _, nodeID := range way.nodes {
			pt, ok := nodes[nodeID]
			if !ok {
				return nil, fmt.Errorf("Missing node with id: %d", nodeID)
			}
			outline = append(outline, pt)
		}
		buildings = append(buildings, CityBuilding{Name: way.name, Outline: ringToEuclidean(outline)})
	}
	if verbose {
		fmt.Printf("Done in %v\n\tBuildings: %d\n", time.Since(st), len(buildings))
	}
	return buildings, nil
}
