// Command plzmap renders a choropleth map of postal-code regions.
//
// Usage:
//
//	plzmap -sites plz.tsv [flags] output.png
//
// The output format follows the file extension: .svg renders a vector
// document, anything else a PNG raster.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"plzmap"
	"plzmap/geodata"
)

func main() {
	var (
		size      = flag.Int("size", 1000, "canvas width in pixels")
		sitesPath = flag.String("sites", "", "site table: plz, lon, lat, name (tab-separated)")
		border    = flag.String("border", "", "country border GeoJSON (optional)")
		frontier  = flag.Bool("frontier", false, "stroke the country frontier")
		fill      = flag.Bool("fill", false, "fill postal-code regions")
		bisectors = flag.Bool("bisectors", false, "stroke raw region bisectors")
		centers   = flag.Bool("centers", false, "mark site centers")
		radius    = flag.Float64("radius", 2, "center marker radius in pixels")
		noclip    = flag.Bool("noclip", false, "do not clip drawing to the border")
		highlight = flag.String("highlight", "", "file of postal codes to color by frequency")
		digits    = flag.Int("digits", 2, "significant digits for -highlight aggregation")
		verbose   = flag.Bool("v", false, "log pipeline diagnostics to stderr")

		areaRules   = ruleFlag{rules: plzmap.RuleTable{}}
		centerRules = ruleFlag{rules: plzmap.RuleTable{}}
		labels      stringList
		prefixes    stringList
	)
	flag.Var(&areaRules, "area", "area color rule prefix=#RGB (repeatable)")
	flag.Var(&centerRules, "center", "center color rule prefix=#RGB (repeatable)")
	flag.Var(&labels, "label", "place name to mark with a labeled dot (repeatable)")
	flag.Var(&prefixes, "prefix", "postal-code prefix inclusion filter (repeatable)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: plzmap -sites plz.tsv [flags] output.{png,svg}")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *sitesPath == "" {
		fatal("missing -sites")
	}
	if *highlight != "" && *digits < 1 {
		fatal("-digits must be at least 1")
	}
	if *verbose {
		plzmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	sites, err := geodata.LoadSites(*sitesPath)
	if err != nil {
		fatal(err)
	}

	var tracks []plzmap.Track
	if *border != "" {
		tracks, err = geodata.LoadTracks(*border)
		if err != nil {
			fatal(err)
		}
	}

	area := areaRules.rules
	if *highlight != "" {
		codes, err := readLines(*highlight)
		if err != nil {
			fatal(err)
		}
		derived := plzmap.FrequencyRules(codes, *digits)
		// Explicit -area rules win over frequency-derived ones.
		for prefix, color := range areaRules.rules {
			derived[prefix] = color
		}
		area = derived
	}

	cfg := plzmap.Config{
		Size:          *size,
		Output:        flag.Arg(0),
		FillAreas:     *fill || *highlight != "",
		AreaRules:     area,
		DrawBisectors: *bisectors,
		DrawFrontier:  *frontier,
		DrawCenters:   *centers,
		CenterRadius:  *radius,
		CenterRules:   centerRules.rules,
		Labels:        labels,
		Prefixes:      prefixes,
		Clip:          !*noclip && *border != "",
	}
	if err := plzmap.Render(cfg, sites, tracks); err != nil {
		fatal(err)
	}
}

func fatal(v any) {
	fmt.Fprintln(os.Stderr, "plzmap:", v)
	os.Exit(2)
}

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// ruleFlag collects repeatable prefix=#RGB color rules.
type ruleFlag struct {
	rules plzmap.RuleTable
	args  []string
}

func (f *ruleFlag) String() string { return strings.Join(f.args, ",") }

func (f *ruleFlag) Set(v string) error {
	prefix, colorStr, ok := strings.Cut(v, "=")
	if !ok || prefix == "" {
		return fmt.Errorf("rule %q: want prefix=#RGB", v)
	}
	color, err := plzmap.ParseColor(colorStr)
	if err != nil {
		return err
	}
	f.rules[prefix] = color
	f.args = append(f.args, v)
	return nil
}

// readLines returns the non-empty lines of a file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
