// Package platform holds the contracts between the game loop and whatever
// draws the playfield and reads the keyboard.
package platform

import (
	"errors"
	"image/color"
)

// Logical resolution of the display surface. Backends scale from this.
const (
	Width  = 800
	Height = 600
)

var (
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.RGBA{A: 0xff}
)

// ErrQuit is returned from Game.Update when the player asked to leave.
// Backends stop their loop and return cleanly when they see it.
var ErrQuit = errors.New("quit requested")

type Key int

const (
	KeySpace Key = iota
	KeyQ
	KeyW
	KeyS
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyQ:
		return "Q"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	}
	return "Unknown"
}

type FontSize int

const (
	FontBody FontSize = iota
	FontTitle
)

// Canvas is the drawing surface, addressed in logical coordinates.
type Canvas interface {
	Fill(c color.Color)
	FillRect(x, y, w, h int, c color.Color)
	FillEllipse(x, y, w, h int, c color.Color)
	Line(x1, y1, x2, y2 int, c color.Color)
	Text(s string, x, y int, size FontSize, c color.Color)
}

// Keyboard exposes the key state for the current frame.
// Poll is called once at the start of every frame.
type Keyboard interface {
	Poll()
	Pressed(k Key) bool
	QuitRequested() bool
}

// Game is driven by a backend once per frame: Update, then Draw.
type Game interface {
	Update() error
	Draw(c Canvas)
}
