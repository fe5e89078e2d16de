package wifi

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ExportReportToCSV Writes the run outcome as two CSV files. E.g.: if fname is
// 'report.csv' then 'report_buildings.csv' (name;confirmed;geom) and
// 'report_devices.csv' (device_id;geom) will be produced. geomFormat is
// either 'wkt' or 'geojson'.
func ExportReportToCSV(fname string, buildings []CityBuilding, located map[string]orb.Point, confirmed []string, geomFormat string) error {
	fnameParts := strings.Split(fname, ".csv")
	fnameBuildings := fmt.Sprintf(fnameParts[0] + "_buildings.csv")
	fnameDevices := fmt.Sprintf(fnameParts[0] + "_devices.csv")

	err := exportBuildingsToCSV(fnameBuildings, buildings, confirmed, geomFormat)
	if err != nil {
		return errors.Wrap(err, "Can't export buildings")
	}

	err = exportDevicesToCSV(fnameDevices, located, geomFormat)
	if err != nil {
		return errors.Wrap(err, "Can't export devices")
	}

	return nil
}

func exportBuildingsToCSV(fname string, buildings []CityBuilding, confirmed []string, geomFormat string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"name", "confirmed", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	confirmedSet := make(map[string]struct{}, len(confirmed))
	for _, name := range confirmed {
		confirmedSet[name] = struct{}{}
	}
	for i := range buildings {
		geomStr := ""
		if strings.ToLower(geomFormat) == "geojson" {
			geomStr = PrepareGeoJSONBuilding(buildings[i])
		} else {
			geomStr = PrepareWKTBuilding(buildings[i])
		}
		_, isConfirmed := confirmedSet[buildings[i].Name]
		err = writer.Write([]string{
			buildings[i].Name,
			fmt.Sprintf("%t", isConfirmed),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write building")
		}
	}
	return nil
}

func exportDevicesToCSV(fname string, located map[string]orb.Point, geomFormat string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"device_id", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	deviceIDs := make([]string, 0, len(located))
	for deviceID := range located {
		deviceIDs = append(deviceIDs, deviceID)
	}
	sort.Strings(deviceIDs)
	for _, deviceID := range deviceIDs {
		geomStr := ""
		if strings.ToLower(geomFormat) == "geojson" {
			geomStr = PrepareGeoJSONHotspot(located[deviceID])
		} else {
			geomStr = PrepareWKTHotspot(located[deviceID])
		}
		err = writer.Write([]string{
			deviceID,
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write device")
		}
	}
	return nil
}
