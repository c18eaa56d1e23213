package window

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/platform"
)

type stubGame struct{ err error }

func (g stubGame) Update() error { return g.err }
func (g stubGame) Draw(c platform.Canvas) {}

func TestEveryKeyIsMapped(t *testing.T) {
	for k := platform.KeySpace; k <= platform.KeyDown; k++ {
		if _, ok := keymap[k]; !ok {
			t.Errorf("%v has no ebiten key", k)
		}
	}
}

func TestUpdateTranslatesQuit(t *testing.T) {
	if err := New(stubGame{err: platform.ErrQuit}).Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit became %v", err)
	}

	boom := errors.New("boom")
	if err := New(stubGame{err: boom}).Update(); !errors.Is(err, boom) {
		t.Errorf("error became %v", err)
	}

	if err := New(stubGame{}).Update(); err != nil {
		t.Errorf("unexpected %v", err)
	}
}

func TestLayoutIsLogicalSize(t *testing.T) {
	w, h := New(stubGame{}).Layout(1920, 1080)
	if w != platform.Width || h != platform.Height {
		t.Errorf("layout = %dx%d", w, h)
	}
}
