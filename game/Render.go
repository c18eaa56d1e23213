package game

import (
	"fmt"

	"pong/core"
	"pong/platform"
)

// drawField paints one gameplay frame. The inversion flag swaps the
// background and foreground colours.
func drawField(c platform.Canvas, s *core.GameState) {
	bg, fg := platform.White, platform.Black
	if s.Inverted {
		bg, fg = platform.Black, platform.White
	}
	c.Fill(bg)

	//兩個球拍
	for _, p := range []core.Paddle{s.Player, s.Opponent} {
		c.FillRect(p.X, p.Y, p.Width, p.Height, fg)
	}

	//球
	b := s.Ball
	c.FillEllipse(b.X, b.Y, b.Width, b.Height, fg)

	//中線
	c.Line(platform.Width/2, 0, platform.Width/2, platform.Height, platform.White)

	//分數更新
	c.Text(fmt.Sprintf("Player: %d", s.Score.Player), 50, 50, platform.FontBody, fg)
	c.Text(fmt.Sprintf("Opponent: %d", s.Score.Opponent), platform.Width-250, 50, platform.FontBody, fg)
}
