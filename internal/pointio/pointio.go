// Package pointio reads and writes points in a line oriented text format.
//
// Each line holds the x and y coordinates of one point separated by white space or a comma.
// Blank lines and lines starting with '#' are ignored.
package pointio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cenkalti/planar/geom"
)

// ErrNoValidPoints is returned from Read when every non-comment line is malformed.
var ErrNoValidPoints = errors.New("no valid points")

var errNotFinite = errors.New("coordinate is not a finite number")

// Logger prints error messages during reading. Arguments are handled in the manner of fmt.Printf.
type Logger func(format string, v ...any)

// Read parses points from r. Malformed lines are reported to logger, which may be nil, and skipped.
func Read(r io.Reader, logger Logger) ([]geom.Point, error) {
	var points []geom.Point
	var hasError bool
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		l := bytes.TrimSpace(scanner.Bytes())
		if len(l) == 0 {
			continue
		}
		if l[0] == '#' {
			continue
		}
		p, err := ParsePoint(fields(string(l)))
		if err != nil {
			hasError = true
			if logger != nil {
				logger("cannot parse point at line %d (%q): %q", lineno, string(l), err.Error())
			}
			continue
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(points) == 0 && hasError {
		// Probably this is not a point file at all.
		return nil, ErrNoValidPoints
	}
	return points, nil
}

// Write writes points to w in the format accepted by Read.
func Write(w io.Writer, points []geom.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		bw.WriteString(formatFloat(p.X))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(p.Y))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// ParsePoint parses two coordinates, x then y.
func ParsePoint(args []string) (geom.Point, error) {
	f, err := parseFloats(args, 2)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(f[0], f[1]), nil
}

// ParseRect parses four bounds in the order xmin, ymin, xmax, ymax.
// Bounds that do not form a rectangle result in *geom.ConstructionError.
func ParseRect(args []string) (geom.Rect, error) {
	f, err := parseFloats(args, 4)
	if err != nil {
		return geom.Rect{}, err
	}
	return geom.NewRect(f[0], f[1], f[2], f[3])
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(args))
	}
	f := make([]float64, n)
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		if !geom.Pt(v, 0).IsFinite() {
			return nil, fmt.Errorf("%s: %w", s, errNotFinite)
		}
		f[i] = v
	}
	return f, nil
}
