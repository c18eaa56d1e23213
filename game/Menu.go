package game

import (
	"pong/platform"
)

type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuStart
	MenuQuit
)

type menuLine struct {
	text string
	x, y int
	size platform.FontSize
}

// Menu is the title screen shown before play starts.
type Menu struct {
	lines []menuLine
}

func NewMenu() *Menu {
	return &Menu{lines: []menuLine{
		{"Pong Game", platform.Width/2 - 100, platform.Height/2 - 50, platform.FontTitle},
		{"Press SPACE to Play", platform.Width/2 - 160, platform.Height/2 + 20, platform.FontBody},
		{"Press Q to Quit", platform.Width/2 - 120, platform.Height/2 + 60, platform.FontBody},
	}}
}

// Choose reads the keyboard. Space wins over Q when both are down.
func (m *Menu) Choose(keys platform.Keyboard) MenuChoice {
	if keys.Pressed(platform.KeySpace) {
		return MenuStart
	}
	if keys.Pressed(platform.KeyQ) {
		return MenuQuit
	}
	return MenuNone
}

func (m *Menu) Draw(c platform.Canvas) {
	c.Fill(platform.Black)
	for _, l := range m.lines {
		c.Text(l.text, l.x, l.y, l.size, platform.White)
	}
}
