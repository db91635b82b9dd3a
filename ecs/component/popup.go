package component

import (
	"image/color"

	"github.com/tanema/gween"
)

// Popup is floating feedback text. Rise moves it up from Transform.Y and
// Fade takes its alpha from 1 to 0.
type Popup struct {
	Text    string
	Color   color.Color
	OriginY float64
	Rise    *gween.Tween
	Fade    *gween.Tween
	Alpha   float64
}

var PopupComponent = NewComponent[Popup]()
