package wifi

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ScenarioParser Reads the two-section scenario format: building outlines
// first, then a blank line, then radar observations.
//
//	Dormitory (0,0) (0,12.83) (34.04,12.83) (34.04,0)
//	Library (40,0) (40,20) (60,20) (60,0)
//
//	(3.5,9.8) 00:0a:95:9d:68:16 48.7 f8:e4:3b:02:11:aa 310.2
//	(20.1,7.2) 00:0a:95:9d:68:16 355.0
//
// Point tokens are written as (x,y) without interior spaces. Device
// identifiers are free-form tokens (usually MAC addresses), each followed by
// its azimuth in degrees.
type ScenarioParser struct {
	filename string
	verbose  bool
}

func (parser *ScenarioParser) String() string {
	return fmt.Sprintf(`
Scenario parser parameters:
	filename: '%s'
	verbose?: %t
	`,
		parser.filename,
		parser.verbose,
	)
}

func NewScenarioParser(fileName string, options ...func(*ScenarioParser)) *ScenarioParser {
	parser := &ScenarioParser{
		filename: fileName,
		verbose:  false,
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

func WithVerbose(verbose bool) func(*ScenarioParser) {
	return func(parser *ScenarioParser) {
		parser.verbose = verbose
	}
}

// Parse Reads the scenario file and returns the buildings and the radar
// observations. Building outlines are closed on the way in.
func (parser *ScenarioParser) Parse() ([]CityBuilding, []RadarObservation, error) {
	f, err := os.Open(parser.filename)
	if err != nil {
		return nil, nil, errors.Wrap(err, "File open")
	}
	defer f.Close()

	if parser.verbose {
		fmt.Printf("Reading scenario...")
	}
	st := time.Now()

	buildings := []CityBuilding{}
	observations := []RadarObservation{}
	buildingsSection := true

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			buildingsSection = false
			continue
		}
		if buildingsSection {
			building, err := parseBuildingLine(line)
			if err != nil {
				return nil, nil, errors.Wrap(err, "Can't parse buildings section")
			}
			buildings = append(buildings, building)
		} else {
			observation, err := parseObservationLine(line)
			if err != nil {
				return nil, nil, errors.Wrap(err, "Can't parse observations section")
			}
			observations = append(observations, observation)
		}
	}
	if scanner.Err() != nil {
		return nil, nil, errors.Wrap(scanner.Err(), "Scanner error")
	}

	if parser.verbose {
		fmt.Printf("Done in %v\n\tBuildings: %d\n\tObservations: %d\n", time.Since(st), len(buildings), len(observations))
	}
	return buildings, observations, nil
}

// parseBuildingLine parses `Name (x1,y1) (x2,y2) (x3,y3) ...`
func parseBuildingLine(line string) (CityBuilding, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return CityBuilding{}, fmt.Errorf("Building needs a name and at least 3 outline points, got '%s'", line)
	}
	name := fields[0]
	points := make([]orb.Point, 0, len(fields)-1)
	for _, token := range fields[1:] {
		pt, err := parsePoint(token)
		if err != nil {
			return CityBuilding{}, err
		}
		points = append(points, pt)
	}
	return NewCityBuilding(name, points), nil
}

// parseObservationLine parses `(x,y) device azimuth device azimuth ...`
func parseObservationLine(line string) (RadarObservation, error) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return RadarObservation{}, fmt.Errorf("Observation needs a vantage point, got '%s'", line)
	}
	at, err := parsePoint(fields[0])
	if err != nil {
		return RadarObservation{}, err
	}
	rest := fields[1:]
	if len(rest)%2 != 0 {
		return RadarObservation{}, fmt.Errorf("Unpaired device/azimuth tokens in '%s'", line)
	}
	pings := make([]RadarPing, 0, len(rest)/2)
	for i := 0; i < len(rest); i += 2 {
		azimuth, err := strconv.ParseFloat(rest[i+1], 64)
		if err != nil {
			return RadarObservation{}, fmt.Errorf("Bad azimuth '%s' for device '%s'", rest[i+1], rest[i])
		}
		pings = append(pings, RadarPing{DeviceID: rest[i], Azimuth: azimuth})
	}
	return RadarObservation{At: at, Pings: pings}, nil
}

// parsePoint parses a single `(x,y)` token
func parsePoint(token string) (orb.Point, error) {
	if !strings.HasPrefix(token, "(") || !strings.HasSuffix(token, ")") {
		return orb.Point{}, fmt.Errorf("Bad point token '%s'", token)
	}
	parts := strings.Split(token[1:len(token)-1], ",")
	if len(parts) != 2 {
		return orb.Point{}, fmt.Errorf("Bad point token '%s'", token)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("Bad X coordinate in '%s'", token)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("Bad Y coordinate in '%s'", token)
	}
	return orb.Point{x, y}, nil
}
