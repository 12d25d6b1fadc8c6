package tui

import "github.com/photogroove/pgroove/internal/gallery"

// status is a closed union over the photo-list lifecycle. Loading is
// the initial state; Loaded always carries both the listing and a
// selection; Errored is terminal for the session.
type status interface{ isStatus() }

type statusLoading struct{}

type statusLoaded struct {
	photos   []gallery.Photo
	selected string
}

type statusErrored struct {
	message string
}

func (statusLoading) isStatus() {}
func (statusLoaded) isStatus()  {}
func (statusErrored) isStatus() {}

// thumbSize controls grid cell sizing only; it never affects selection
// or filters.
type thumbSize int

const (
	sizeSmall thumbSize = iota
	sizeMedium
	sizeLarge
)

func (s thumbSize) String() string {
	switch s {
	case sizeSmall:
		return "small"
	case sizeLarge:
		return "large"
	default:
		return "med"
	}
}

func (s thumbSize) cellWidth() int {
	switch s {
	case sizeSmall:
		return 14
	case sizeLarge:
		return 34
	default:
		return 24
	}
}

type sliderIndex int

const (
	sliderHue sliderIndex = iota
	sliderRipple
	sliderNoise
)

func (s sliderIndex) String() string {
	switch s {
	case sliderRipple:
		return "Ripple"
	case sliderNoise:
		return "Noise"
	default:
		return "Hue"
	}
}

// sliderMax is the top of the 0..11 slider scale.
const sliderMax = 11

type focusPane int

const (
	focusThumbs focusPane = iota
	focusSliders
)
