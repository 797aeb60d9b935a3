package field

import "image/color"

const (
	DefaultCount        = 50
	DefaultLinkDistance = 150.0
	DefaultLinkAlpha    = 0.1

	maxSpeed   = 0.25 // per axis, per tick
	minRadius  = 0.5
	maxRadius  = 2.5
	minOpacity = 0.2
	maxOpacity = 0.7
)

// DefaultColor is the accent used for particles and links.
var DefaultColor = color.NRGBA{R: 108, G: 92, B: 231, A: 255}
