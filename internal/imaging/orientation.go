package imaging

import (
	"image"
	"io"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// readOrientation returns the EXIF orientation (1..8) stored in r, or 1 when
// the data carries no usable orientation tag.
func readOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil || v < 1 || v > 8 {
		return 1
	}
	return v
}

// orientationMatrix maps source coordinates of a w×h image to upright
// destination coordinates for the given EXIF orientation.
func orientationMatrix(orientation int, w, h float64) f64.Aff3 {
	switch orientation {
	case 2: // mirror horizontal
		return f64.Aff3{-1, 0, w, 0, 1, 0}
	case 3: // rotate 180
		return f64.Aff3{-1, 0, w, 0, -1, h}
	case 4: // mirror vertical
		return f64.Aff3{1, 0, 0, 0, -1, h}
	case 5: // transpose
		return f64.Aff3{0, 1, 0, 1, 0, 0}
	case 6: // rotate 90 clockwise
		return f64.Aff3{0, -1, h, 1, 0, 0}
	case 7: // transverse
		return f64.Aff3{0, -1, h, -1, 0, w}
	case 8: // rotate 90 counter-clockwise
		return f64.Aff3{0, 1, 0, -1, 0, w}
	}
	return f64.Aff3{1, 0, 0, 0, 1, 0}
}

// applyOrientation returns img turned upright. Orientations 5 to 8 swap the
// width and height.
func applyOrientation(img image.Image, orientation int) image.Image {
	if orientation < 2 || orientation > 8 {
		return img
	}

	b := img.Bounds()
	dw, dh := b.Dx(), b.Dy()
	if orientation >= 5 {
		dw, dh = dh, dw
	}

	m := orientationMatrix(orientation, float64(b.Dx()), float64(b.Dy()))
	// Shift so that b.Min maps like the origin.
	mx, my := float64(b.Min.X), float64(b.Min.Y)
	m[2] -= m[0]*mx + m[1]*my
	m[5] -= m[3]*mx + m[4]*my

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.NearestNeighbor.Transform(dst, m, img, b, draw.Src, nil)
	return dst
}
