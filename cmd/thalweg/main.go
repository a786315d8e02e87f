// Command thalweg traces the deepest navigable line through an inlet.
//
// Usage:
//
//	thalweg -data DIR -corners FILE [flags]
//
// Every *.txt ("lat lon depth" in DMS) and *.csv (header-mapped decimal degrees)
// file directly inside DIR is read as survey data; soundings at or above datum are
// dropped unless -keep-dry is set. FILE lists the inlet corners, as DMS text or CSV
// by extension; a path is traced between each consecutive pair, the legs are
// joined, and the result is densified at resolution spacing unless -sparse is
// set. The result is written to OUT/path.{txt,csv,geojson} and, with -section,
// OUT/section.csv. Use the section command to profile a path written earlier.
//
// Exit status is 1 for usage or configuration errors, 2 for I/O errors and 3
// when two consecutive corners are not connected at the chosen resolution.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/katalvlaran/thalweg/export"
	"github.com/katalvlaran/thalweg/geodesic"
	"github.com/katalvlaran/thalweg/pathfinder"
	"github.com/katalvlaran/thalweg/refine"
	"github.com/katalvlaran/thalweg/survey"
)

const (
	exitOK = iota
	exitUsage
	exitIO
	exitNoPath
)

type config struct {
	data       string
	corners    string
	out        string
	resolution uint
	cell       float64
	strict     bool
	format     export.Format
	section    bool
	sink       bool
	shrink     bool
	decimate   bool
	simplify   bool
	midpoints  bool
	sparse     bool
	keepDry    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	logger := log.New(stderr, "thalweg: ", 0)

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logger.Print(err)
		}
		return exitUsage
	}

	data, err := survey.ReadDir(cfg.data)
	if err != nil {
		logger.Print(err)
		return exitIO
	}
	corners, err := survey.ReadCornerFile(cfg.corners)
	if err != nil {
		logger.Print(err)
		return exitIO
	}
	if len(corners) < 2 {
		logger.Printf("%s: need at least two corners, got %d", cfg.corners, len(corners))
		return exitUsage
	}
	logger.Printf("%d soundings, %d corners", len(data), len(corners))

	data, ref := soundings(cfg, data, logger)

	g, err := pathfinder.New(data, cfg.resolution,
		pathfinder.WithCellWidth(cfg.cell),
		pathfinder.WithLogger(logger),
		strictOption(cfg.strict),
	)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}

	path, err := trace(g, corners, logger)
	if err != nil {
		logger.Print(err)
		if errors.Is(err, pathfinder.ErrNoPath) {
			return exitNoPath
		}
		return exitIO
	}
	logger.Printf("path contains %d points", len(path))

	path = polish(cfg, ref, path, logger)

	if err := writeOutputs(cfg, path); err != nil {
		logger.Print(err)
		return exitIO
	}

	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("thalweg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.data, "data", "", "directory of survey data files (required)")
	fs.StringVar(&cfg.corners, "corners", "", "file listing the inlet corners (required)")
	fs.StringVar(&cfg.out, "out", ".", "directory the results are written to")
	fs.UintVar(&cfg.resolution, "resolution", 10, "adjacency distance in metres")
	fs.Float64Var(&cfg.cell, "cell", 0.01, "spatial index cell width in degrees")
	fs.BoolVar(&cfg.strict, "strict", false, "fail when -resolution exceeds one index cell")
	fs.Var(&cfg.format, "format", "path format: dms, csv or geojson")
	fs.BoolVar(&cfg.section, "section", false, "also write section.csv")
	fs.BoolVar(&cfg.sink, "sink", false, "settle the path onto nearby deeper soundings")
	fs.BoolVar(&cfg.shrink, "shrink", false, "drop points crowding a deeper predecessor")
	fs.BoolVar(&cfg.decimate, "decimate", false, "keep only the deepest sounding per resolution neighbourhood")
	fs.BoolVar(&cfg.simplify, "simplify", false, "simplify the path with Visvalingam-Whyatt")
	fs.BoolVar(&cfg.midpoints, "midpoints", false, "insert the sounding nearest each leg midpoint")
	fs.BoolVar(&cfg.sparse, "sparse", false, "skip densifying the path at resolution spacing")
	fs.BoolVar(&cfg.keepDry, "keep-dry", false, "keep soundings with depth <= 0")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.data == "" || cfg.corners == "" {
		return cfg, errors.New("-data and -corners are required")
	}

	return cfg, nil
}

// soundings drops dry soundings unless asked to keep them, optionally decimates,
// and indexes what remains for the refinement passes.
func soundings(cfg config, data []geodesic.Location, logger *log.Logger) ([]geodesic.Location, *refine.Refiner) {
	if !cfg.keepDry {
		var wet []geodesic.Location
		for _, l := range data {
			if l.Depth > 0 {
				wet = append(wet, l)
			}
		}
		if dropped := len(data) - len(wet); dropped > 0 {
			logger.Printf("dropped %d soundings at or above datum", dropped)
		}
		data = wet
	}

	ref := refine.New(data, cfg.resolution)
	if cfg.decimate {
		data = ref.Decimate()
		ref = refine.New(data, cfg.resolution)
		logger.Printf("decimated to %d soundings", len(data))
	}

	return data, ref
}

// polish runs the optional refinement passes on a traced path, then densifies it
// unless -sparse is set.
func polish(cfg config, ref *refine.Refiner, path []geodesic.Location, logger *log.Logger) []geodesic.Location {
	if cfg.sink {
		var rounds int
		path, rounds = ref.Settle(path)
		logger.Printf("settled after %d rounds, %d points", rounds, len(path))
	}
	if cfg.shrink {
		path = ref.Shrink(path)
		logger.Printf("shrunk to %d points", len(path))
	}
	if cfg.simplify {
		path = refine.Simplify(path, refine.DefaultSimplifyThreshold)
		logger.Printf("simplified to %d points", len(path))
	}
	if cfg.midpoints {
		path = ref.AddMidpoints(path)
		logger.Printf("added midpoints, %d points", len(path))
	}
	if !cfg.sparse {
		path = ref.Populate(path)
		logger.Printf("populated to %d points", len(path))
	}

	return path
}

func strictOption(strict bool) pathfinder.Option {
	if strict {
		return pathfinder.WithStrictCellWidth()
	}

	return func(*pathfinder.Options) {}
}

// trace joins the legs between consecutive corners. A leg starting where the
// previous one ended does not repeat the shared point.
func trace(g *pathfinder.Graph, corners []geodesic.Coordinate, logger *log.Logger) ([]geodesic.Location, error) {
	legs := export.CornerSections(corners)

	var path []geodesic.Location
	for i := 1; i < len(corners); i++ {
		leg, err := g.ShortestPath(corners[i-1], corners[i])
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i, err)
		}
		logger.Printf("leg %d: %d points over %.0fm", i, len(leg), legs[i-1])
		if len(path) > 0 && path[len(path)-1] == leg[0] {
			leg = leg[1:]
		}
		path = append(path, leg...)
	}

	return path, nil
}

func writeOutputs(cfg config, path []geodesic.Location) error {
	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return err
	}

	err := writeFile(filepath.Join(cfg.out, "path"+cfg.format.Extension()), func(w io.Writer) error {
		return export.Write(w, cfg.format, path)
	})
	if err != nil || !cfg.section {
		return err
	}

	return writeFile(filepath.Join(cfg.out, "section.csv"), func(w io.Writer) error {
		return export.WriteSectionCSV(w, export.Section(path))
	})
}

func writeFile(name string, fn func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}

	return f.Close()
}
