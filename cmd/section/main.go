// Command section writes the longitudinal depth profile of a traced path.
//
// Usage:
//
//	section [-out FILE] PATH
//
// PATH is a thalweg written as GeoJSON (".geojson"), CSV (".csv") or DMS text.
// The profile is written as "distance,depth" rows, distance in kilometers, to
// FILE (default section.csv).
//
// Exit status is 1 for usage errors and 2 for I/O errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/thalweg/export"
)

const (
	exitOK = iota
	exitUsage
	exitIO
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	logger := log.New(stderr, "section: ", 0)

	fs := flag.NewFlagSet("section", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "section.csv", "file the profile is written to")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		logger.Printf("want one path file, got %d", fs.NArg())
		return exitUsage
	}

	path, err := export.ReadPath(fs.Arg(0))
	if err != nil {
		logger.Print(err)
		return exitIO
	}
	logger.Printf("%s: %d points", fs.Arg(0), len(path))

	f, err := os.Create(*out)
	if err != nil {
		logger.Print(err)
		return exitIO
	}
	if err := export.WriteSectionCSV(f, export.Section(path)); err != nil {
		f.Close()
		logger.Print(fmt.Errorf("%s: %w", *out, err))
		return exitIO
	}
	if err := f.Close(); err != nil {
		logger.Print(err)
		return exitIO
	}

	return exitOK
}
