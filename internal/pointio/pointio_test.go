package pointio

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cenkalti/planar/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := `
# sample points
0.3 0.2
0.2,0.2
  0.1	0.1

0.2, 0.1
garbage
0.3 0.3 0.4
inf 0.5
0.3 0.3
`
	var logged []string
	logger := func(format string, v ...any) {
		logged = append(logged, fmt.Sprintf(format, v...))
	}
	points, err := Read(strings.NewReader(input), logger)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{
		geom.Pt(0.3, 0.2),
		geom.Pt(0.2, 0.2),
		geom.Pt(0.1, 0.1),
		geom.Pt(0.2, 0.1),
		geom.Pt(0.3, 0.3),
	}, points)
	require.Len(t, logged, 3)
	assert.Contains(t, logged[0], "line 8")
}

func TestReadNoValidPoints(t *testing.T) {
	_, err := Read(strings.NewReader("foo\nbar baz\n"), nil)
	assert.True(t, errors.Is(err, ErrNoValidPoints))

	points, err := Read(strings.NewReader("# only comments\n\n"), nil)
	assert.NoError(t, err)
	assert.Empty(t, points)
}

func TestWriteRead(t *testing.T) {
	points := []geom.Point{geom.Pt(0.1, 0.7), geom.Pt(-3, 1e-9), geom.Pt(1.0/3, 2)}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, points))
	got, err := Read(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, points, got)
}

func TestParseRect(t *testing.T) {
	r, err := ParseRect([]string{"0", "0.5", "1", "2"})
	require.NoError(t, err)
	assert.Equal(t, geom.MustRect(0, 0.5, 1, 2), r)

	_, err = ParseRect([]string{"0.5", "0", "0.1", "1"})
	var cerr *geom.ConstructionError
	assert.True(t, errors.As(err, &cerr))

	_, err = ParseRect([]string{"0", "0", "1"})
	assert.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint([]string{"1e-3", "-2"})
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(0.001, -2), p)

	_, err = ParsePoint([]string{"NaN", "0"})
	assert.Error(t, err)
	_, err = ParsePoint([]string{"x", "0"})
	assert.Error(t, err)
}
