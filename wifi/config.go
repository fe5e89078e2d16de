package wifi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig Settings of a single wifi-search run. The scenario file always
// supplies the radar observations; building outlines come either from its
// buildings section or, when OSMFile is set, from an OSM extract (the
// scenario coordinates must then be planar meters, EPSG:3857, to match the
// projected footprints).
type RunConfig struct {
	ScenarioFile   string   `yaml:"scenario_file"`
	OSMFile        string   `yaml:"osm_file,omitempty"`
	BuildingTags   []string `yaml:"building_tags,omitempty"`
	GeometryFormat string   `yaml:"geometry_format,omitempty"`
	ReportFile     string   `yaml:"report_file,omitempty"`
	Verbose        bool     `yaml:"verbose,omitempty"`
}

// LoadRunConfig Reads and validates a YAML run configuration. An absent
// geometry_format defaults to wkt.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config RunConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if config.ScenarioFile == "" {
		return nil, fmt.Errorf("config: scenario_file is required")
	}
	if config.GeometryFormat == "" {
		config.GeometryFormat = "wkt"
	}
	if config.GeometryFormat != "wkt" && config.GeometryFormat != "geojson" {
		return nil, fmt.Errorf("config: unknown geometry_format %q (expected wkt or geojson)", config.GeometryFormat)
	}
	if len(config.BuildingTags) > 0 && config.OSMFile == "" {
		return nil, fmt.Errorf("config: building_tags given without osm_file")
	}
	return &config, nil
}
