package tui

import (
	"github.com/photogroove/pgroove/internal/gallery"
)

type photosLoadedMsg struct {
	photos []gallery.Photo
}

type photosErrMsg struct {
	err error
}

type randomPhotoMsg struct {
	photo gallery.Photo
}

type activityMsg struct {
	text string
}

type activityClosedMsg struct{}

type renderErrMsg struct {
	err error
}
