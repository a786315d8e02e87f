package survey

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/thalweg/geodesic"
)

// File extensions understood by ReadFile, ReadCornerFile and ReadDir.
const (
	DataExt = ".txt" // DMS text
	CSVExt  = ".csv" // header-mapped decimal degrees
)

// ReadData reads soundings from r. Header lines (containing '"') and blank lines
// are skipped; any other line must be "latitude longitude depth".
func ReadData(r io.Reader) ([]geodesic.Location, error) {
	var out []geodesic.Location
	err := eachRecord(r, 3, func(fields []string) error {
		c, err := ParseCoordinate(fields[0], fields[1])
		if err != nil {
			return err
		}
		d, err := ParseDepth(fields[2])
		if err != nil {
			return err
		}
		out = append(out, geodesic.Location{Coord: c, Depth: d})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ReadCorners reads inlet corner coordinates from r, one "latitude longitude" per line.
func ReadCorners(r io.Reader) ([]geodesic.Coordinate, error) {
	var out []geodesic.Coordinate
	err := eachRecord(r, 2, func(fields []string) error {
		c, err := ParseCoordinate(fields[0], fields[1])
		if err != nil {
			return err
		}
		out = append(out, c)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// eachRecord splits every data line of r into fields and hands them to fn.
func eachRecord(r io.Reader, want int, fn func([]string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.ContainsRune(text, '"') {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != want {
			return fmt.Errorf("line %d: %w: got %d, want %d", line, ErrFieldCount, len(fields), want)
		}
		if err := fn(fields); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}

	return sc.Err()
}

// ReadFile reads soundings from the file at path: CSV when the extension is
// CSVExt, DMS text otherwise.
func ReadFile(path string) ([]geodesic.Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	read := ReadData
	if isCSV(path) {
		read = ReadDataCSV
	}
	locs, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return locs, nil
}

// ReadCornerFile reads inlet corners from the file at path: CSV when the
// extension is CSVExt, DMS text otherwise.
func ReadCornerFile(path string) ([]geodesic.Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	read := ReadCorners
	if isCSV(path) {
		read = ReadCornersCSV
	}
	corners, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return corners, nil
}

// ReadDir aggregates every regular DataExt or CSVExt file directly inside dir, in
// file-name order. Subdirectories and other extensions are ignored.
func ReadDir(dir string) ([]geodesic.Location, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []geodesic.Location
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if !e.Type().IsRegular() || (ext != DataExt && ext != CSVExt) {
			continue
		}
		locs, err := ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, locs...)
	}

	return out, nil
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), CSVExt)
}
