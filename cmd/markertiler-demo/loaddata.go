package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/geomarker/markertiler/internal/cliutil"
	"github.com/geomarker/markertiler/internal/geoindex"
	"github.com/geomarker/markertiler/internal/modeltest"
)

// loadGeoURLFile reads one geo:LAT,LON[,ALT] URL per non-blank,
// non-comment line and inserts each into a freshly-built MockModel.
func loadGeoURLFile(path string) (*modeltest.MockModel, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	m := modeltest.NewMockModel()
	bar := cliutil.NewProgressBar("loading", int64(len(lines)))
	for _, line := range lines {
		coord, ok := geoindex.ParseGeoURL(line)
		if !ok {
			bar.Increment()
			continue
		}
		m.Add(coord)
		bar.Increment()
	}
	bar.Finish()

	return m, lines, nil
}
