package geodata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/gogpu/gg"

	"plzmap"
)

// LoadSites reads a tab-separated site table with one row per postal
// code:
//
//	plz <TAB> longitude <TAB> latitude <TAB> name
//
// Blank lines and lines starting with '#' are skipped. Extra columns
// after the name are ignored; missing columns or unparsable coordinates
// are errors naming the offending row.
func LoadSites(path string) ([]plzmap.Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	sites := make([]plzmap.Site, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}
		if len(row) < 4 {
			return nil, fmt.Errorf("%s row %d: want plz, lon, lat, name; got %d fields", path, i+1, len(row))
		}
		lon, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: longitude %q: %w", path, i+1, row[1], err)
		}
		lat, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: latitude %q: %w", path, i+1, row[2], err)
		}
		sites = append(sites, plzmap.Site{
			Code: row[0],
			Pos:  gg.Point{X: lon, Y: lat},
			Name: row[3],
		})
	}
	return sites, nil
}
