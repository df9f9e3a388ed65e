package geom

import "strconv"

// ConstructionError is returned from NewRect when the bounds do not describe a rectangle.
type ConstructionError struct {
	XMin, YMin, XMax, YMax float64
}

// Error implements error interface.
func (e *ConstructionError) Error() string {
	axis := "y"
	if !(e.XMin <= e.XMax) {
		axis = "x"
	}
	return "invalid rectangle: " + axis + "min > " + axis + "max in [" +
		format(e.XMin) + ", " + format(e.YMin) + ", " + format(e.XMax) + ", " + format(e.YMax) + "]"
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
