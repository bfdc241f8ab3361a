package voronoi

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

var (
	// ErrNilSites indicates CreateDiagram was called without a site collection.
	ErrNilSites = errors.New("voronoi: site collection must not be nil")
	// ErrInvalidRect indicates a bounding rectangle without positive, finite area.
	ErrInvalidRect = errors.New("voronoi: bounding rectangle must have positive finite area")
	// ErrNonFiniteSite indicates a site with a NaN or infinite coordinate.
	ErrNonFiniteSite = errors.New("voronoi: site coordinates must be finite")
	// ErrUnknownBorderMode indicates a BorderMode outside the defined values.
	ErrUnknownBorderMode = errors.New("voronoi: unknown border mode")
)

func (r Rect) validate() error {
	for _, v := range []float64{r.X.Lo, r.X.Hi, r.Y.Lo, r.Y.Hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: got x [%v, %v], y [%v, %v]", ErrInvalidRect, r.X.Lo, r.X.Hi, r.Y.Lo, r.Y.Hi)
		}
	}
	if !(r.X.Lo < r.X.Hi) || !(r.Y.Lo < r.Y.Hi) {
		return fmt.Errorf("%w: got x [%v, %v], y [%v, %v]", ErrInvalidRect, r.X.Lo, r.X.Hi, r.Y.Lo, r.Y.Hi)
	}
	return nil
}

// validateInput collects every configuration problem of a CreateDiagram call.
func validateInput(points []Point, bounds Rect, mode BorderMode) error {
	var err error
	if points == nil {
		err = multierr.Append(err, ErrNilSites)
	}
	err = multierr.Append(err, bounds.validate())
	if mode != DoNotMakeBorderEdges && mode != MakeBorderEdges {
		err = multierr.Append(err, fmt.Errorf("%w: %d", ErrUnknownBorderMode, int(mode)))
	}
	for i, p := range points {
		if !isFinite(p) {
			err = multierr.Append(err, fmt.Errorf("%w: site %d is %v", ErrNonFiniteSite, i, p))
		}
	}
	return err
}
