package models

import "fmt"

// Dimension is an image size in pixels.
type Dimension struct {
	Width  int
	Height int
}

// String formats the dimension as WxH.
func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
