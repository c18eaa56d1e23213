package game

import (
	"image/color"
	"testing"

	"pong/core"
	"pong/platform"
)

func TestMenuDraw(t *testing.T) {
	c, _ := newTestController(newKeys())
	cv := &recordingCanvas{}
	c.Draw(cv)

	fills := cv.ops("fill")
	if len(fills) != 1 || fills[0].color != platform.Black {
		t.Fatalf("fills = %+v", fills)
	}
	want := []string{"Pong Game", "Press SPACE to Play", "Press Q to Quit"}
	texts := cv.ops("text")
	if len(texts) != len(want) {
		t.Fatalf("texts = %+v", texts)
	}
	for i, w := range want {
		if texts[i].text != w {
			t.Errorf("line %d = %q, want %q", i, texts[i].text, w)
		}
	}
	if texts[0].x != 300 || texts[0].y != 250 {
		t.Errorf("title at (%d,%d)", texts[0].x, texts[0].y)
	}
	if len(cv.ops("rect")) != 0 || len(cv.ops("ellipse")) != 0 {
		t.Error("menu drew gameplay")
	}
}

func TestFieldDrawColours(t *testing.T) {
	cases := []struct {
		inverted bool
		bg, fg   color.Color
	}{
		{false, platform.White, platform.Black},
		{true, platform.Black, platform.White},
	}
	for _, tc := range cases {
		c, _ := newTestController(newKeys())
		s := c.State()
		s.Start()
		s.Inverted = tc.inverted
		s.Score = core.Score{Player: 3, Opponent: 5}

		cv := &recordingCanvas{}
		c.Draw(cv)

		if f := cv.ops("fill"); len(f) != 1 || f[0].color != tc.bg {
			t.Errorf("inverted=%v: fill = %+v", tc.inverted, f)
		}
		rects := cv.ops("rect")
		if len(rects) != 2 {
			t.Fatalf("rects = %+v", rects)
		}
		if rects[0].x != s.Player.X || rects[1].x != s.Opponent.X {
			t.Errorf("paddles at %d/%d", rects[0].x, rects[1].x)
		}
		for _, r := range append(rects, cv.ops("ellipse")...) {
			if r.color != tc.fg {
				t.Errorf("inverted=%v: %s colour = %v", tc.inverted, r.op, r.color)
			}
		}
		if l := cv.ops("line"); len(l) != 1 || l[0].x != 400 || l[0].color != platform.White {
			t.Errorf("centre line = %+v", l)
		}
		texts := cv.ops("text")
		if len(texts) != 2 || texts[0].text != "Player: 3" || texts[1].text != "Opponent: 5" {
			t.Errorf("score texts = %+v", texts)
		}
		if texts[1].x != 550 || texts[1].y != 50 {
			t.Errorf("opponent score at (%d,%d)", texts[1].x, texts[1].y)
		}
	}
}
