package imaging

import (
	"errors"
	"fmt"
	"math"

	"github.com/harrison/hsutools/internal/models"
)

// ErrNoSizing is returned when a resize request carries no sizing parameter.
var ErrNoSizing = errors.New("provide at least one of width, height, max-width, max-height, or scale")

// ErrInvalidSizing is returned when a sizing parameter is out of range.
var ErrInvalidSizing = errors.New("invalid sizing parameter")

// SizingDirective describes how an image should be resized.
// Zero values mean "not set" for every numeric field.
type SizingDirective struct {
	Width     int
	Height    int
	MaxWidth  int
	MaxHeight int
	Scale     float64

	KeepAspect   bool
	AllowUpscale bool
}

// Validate checks that at least one sizing parameter is set and none is negative.
func (d SizingDirective) Validate() error {
	if d.Width < 0 || d.Height < 0 || d.MaxWidth < 0 || d.MaxHeight < 0 {
		return fmt.Errorf("%w: sizes must be >= 0 (width=%d height=%d max-width=%d max-height=%d)",
			ErrInvalidSizing, d.Width, d.Height, d.MaxWidth, d.MaxHeight)
	}
	if d.Scale < 0 {
		return fmt.Errorf("%w: scale must be > 0, got %g", ErrInvalidSizing, d.Scale)
	}
	if d.Width == 0 && d.Height == 0 && d.MaxWidth == 0 && d.MaxHeight == 0 && d.Scale == 0 {
		return ErrNoSizing
	}
	return nil
}

// ComputeTargetSize resolves the directive against an original size.
//
// Stages run in a fixed order, each one starting from the previous result:
// scale, explicit width/height, bounding box, upscale guard. Every stage
// truncates toward zero, so rounding can compound across stages. Both axes
// of the result are at least 1.
func ComputeTargetSize(original models.Dimension, d SizingDirective) models.Dimension {
	ow, oh := float64(original.Width), float64(original.Height)
	tw, th := original.Width, original.Height

	switch {
	case d.Scale > 0:
		tw = int(ow * d.Scale)
		th = int(oh * d.Scale)
	case d.Width > 0 || d.Height > 0:
		tw, th = explicitSize(original, d)
	}

	if d.MaxWidth > 0 || d.MaxHeight > 0 {
		maxW, maxH := d.MaxWidth, d.MaxHeight
		if maxW == 0 {
			maxW = tw
		}
		if maxH == 0 {
			maxH = th
		}
		if d.KeepAspect {
			ratio := min(fitRatio(maxW, tw), fitRatio(maxH, th))
			if ratio < 1 {
				tw = int(float64(tw) * ratio)
				th = int(float64(th) * ratio)
			}
		} else {
			tw = min(tw, maxW)
			th = min(th, maxH)
		}
	}

	if !d.AllowUpscale {
		if d.KeepAspect {
			ratio := min(1, fitRatio(original.Width, tw), fitRatio(original.Height, th))
			tw = int(float64(tw) * ratio)
			th = int(float64(th) * ratio)
		} else {
			tw = min(tw, original.Width)
			th = min(th, original.Height)
		}
	}

	return models.Dimension{Width: max(1, tw), Height: max(1, th)}
}

// explicitSize applies the width/height stage.
func explicitSize(original models.Dimension, d SizingDirective) (int, int) {
	ow, oh := float64(original.Width), float64(original.Height)
	tw, th := original.Width, original.Height
	if d.Width > 0 {
		tw = d.Width
	}
	if d.Height > 0 {
		th = d.Height
	}
	if !d.KeepAspect {
		return tw, th
	}

	switch {
	case d.Width > 0 && d.Height > 0:
		ratio := min(float64(d.Width)/ow, float64(d.Height)/oh)
		return int(ow * ratio), int(oh * ratio)
	case d.Width > 0:
		ratio := float64(d.Width) / ow
		return tw, int(oh * ratio)
	default:
		ratio := float64(d.Height) / oh
		return int(ow * ratio), th
	}
}

// fitRatio is limit/current, treating a collapsed (zero) axis as unconstrained.
func fitRatio(limit, current int) float64 {
	if current <= 0 {
		return math.Inf(1)
	}
	return float64(limit) / float64(current)
}
