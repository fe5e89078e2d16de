package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"citysearch/wifi"
)

var (
	fileName   = flag.String("file", "scenario.txt", "Filename of scenario file: building outlines, blank line, radar observations")
	confName   = flag.String("conf", "", "Filename of YAML run configuration. Overrides the other flags when set")
	osmName    = flag.String("osm", "", "Filename of *.osm.pbf file to take building footprints from instead of the scenario section (scenario coordinates must be planar meters, EPSG:3857, to match)")
	tagStr     = flag.String("tags", "", "Set of needed 'building' tag values (separated by commas). Keep it empty to accept any")
	geomFormat = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	out        = flag.String("out", "", "Filename of 'Comma-Separated Values' (CSV) formatted report. E.g.: if file name is 'report.csv' then 2 files will be produced: 'report_buildings.csv', 'report_devices.csv'. Keep it empty to skip the report")
	verbose    = flag.Bool("verbose", false, "Verbose output")
)

func main() {

	flag.Parse()

	scenarioFile := *fileName
	osmFile := *osmName
	buildingTags := []string{}
	if *tagStr != "" {
		buildingTags = strings.Split(*tagStr, ",")
	}
	format := *geomFormat
	reportFile := *out
	verboseRun := *verbose

	if *confName != "" {
		config, err := wifi.LoadRunConfig(*confName)
		if err != nil {
			log.Fatalf("wifi-search: %v", err)
		}
		scenarioFile = config.ScenarioFile
		osmFile = config.OSMFile
		buildingTags = config.BuildingTags
		format = config.GeometryFormat
		reportFile = config.ReportFile
		verboseRun = config.Verbose
	}

	parser := wifi.NewScenarioParser(scenarioFile, wifi.WithVerbose(verboseRun))
	buildings, observations, err := parser.Parse()
	if err != nil {
		fmt.Println(err)
		return
	}

	if osmFile != "" {
		filter := &wifi.BuildingFilter{Tags: buildingTags}
		buildings, err = wifi.ImportBuildingsFromOSMFile(osmFile, filter, verboseRun)
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	located := wifi.LocateAll(wifi.GroupRadarLines(observations))
	confirmed := wifi.ConfirmBuildings(buildings, located)
	for _, name := range confirmed {
		fmt.Println(name)
	}

	if reportFile != "" {
		err = wifi.ExportReportToCSV(reportFile, buildings, located, confirmed, format)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
}
