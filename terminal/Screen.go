// Package terminal runs the game inside a terminal with tcell. The 800x600
// logical playfield is scaled onto whatever grid of cells the terminal has.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell"

	"pong/platform"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const LineSymbol = 0x2590   // 中線

const eventBuffer = 64

// Screen is both the Canvas and the Keyboard for the terminal backend.
type Screen struct {
	screen tcell.Screen
	events chan *tcell.EventKey
	closed chan struct{}

	bg   tcell.Color
	hold time.Duration
	held map[platform.Key]time.Time
	quit bool

	now func() time.Time
}

// NewScreen takes over the terminal. A key counts as held for hold after
// its last press or auto-repeat, since terminals never report releases.
func NewScreen(hold time.Duration) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newScreen(screen, hold)
}

func newScreen(screen tcell.Screen, hold time.Duration) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()

	s := &Screen{
		screen: screen,
		events: make(chan *tcell.EventKey, eventBuffer),
		closed: make(chan struct{}),
		bg:     tcell.ColorBlack,
		hold:   hold,
		held:   make(map[platform.Key]time.Time),
		now:    time.Now,
	}
	go s.listen()
	return s, nil
}

// listen 建立一個goroutine去監聽鍵盤的事件
func (s *Screen) listen() {
	defer close(s.closed)
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			select {
			case s.events <- ev:
			default:
				// 來不及處理就丟掉
			}
		}
	}
}

// Poll drains the pending key events without blocking.
func (s *Screen) Poll() {
	for {
		select {
		case ev := <-s.events:
			s.handleKey(ev)
		case <-s.closed:
			s.quit = true
			return
		default:
			return
		}
	}
}

func (s *Screen) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.quit = true
	case tcell.KeyUp:
		s.press(platform.KeyUp)
	case tcell.KeyDown:
		s.press(platform.KeyDown)
	case tcell.KeyRune:
		if k, ok := runeKeys[ev.Rune()]; ok {
			s.press(k)
		}
	}
}

var runeKeys = map[rune]platform.Key{
	' ': platform.KeySpace,
	'q': platform.KeyQ, 'Q': platform.KeyQ,
	'w': platform.KeyW, 'W': platform.KeyW,
	's': platform.KeyS, 'S': platform.KeyS,
}

func (s *Screen) press(k platform.Key) {
	s.held[k] = s.now()
}

func (s *Screen) Pressed(k platform.Key) bool {
	at, ok := s.held[k]
	return ok && s.now().Sub(at) <= s.hold
}

func (s *Screen) QuitRequested() bool {
	return s.quit
}

// Show flushes the frame to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Close gives the terminal back.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Run drives g at fps frames per second until it returns platform.ErrQuit,
// fails, or ctx is cancelled.
func Run(ctx context.Context, s *Screen, g platform.Game, fps int) error {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		if err := g.Update(); err != nil {
			if errors.Is(err, platform.ErrQuit) {
				return nil
			}
			return err
		}
		g.Draw(s)
		s.Show()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
