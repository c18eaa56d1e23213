// Package window runs the game in a native 800x600 window with ebiten.
package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pong/platform"
)

const Title = "Pong"

// ebitenutil's debug font cell.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var keymap = map[platform.Key]ebiten.Key{
	platform.KeySpace: ebiten.KeySpace,
	platform.KeyQ:     ebiten.KeyQ,
	platform.KeyW:     ebiten.KeyW,
	platform.KeyS:     ebiten.KeyS,
	platform.KeyUp:    ebiten.KeyArrowUp,
	platform.KeyDown:  ebiten.KeyArrowDown,
}

// Keyboard reads ebiten's live key state.
type Keyboard struct{}

func (Keyboard) Poll() {}

func (Keyboard) Pressed(k platform.Key) bool {
	key, ok := keymap[k]
	return ok && ebiten.IsKeyPressed(key)
}

func (Keyboard) QuitRequested() bool {
	return ebiten.IsWindowBeingClosed()
}

// Window adapts a platform.Game to ebiten.Game and is the Canvas handed
// to Draw.
type Window struct {
	game   platform.Game
	screen *ebiten.Image
	texts  map[string]*ebiten.Image
}

func New(g platform.Game) *Window {
	return &Window{game: g, texts: make(map[string]*ebiten.Image)}
}

func (w *Window) Update() error {
	err := w.game.Update()
	if errors.Is(err, platform.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.screen = screen
	w.game.Draw(w)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return platform.Width, platform.Height
}

func (w *Window) Fill(c color.Color) {
	w.screen.Fill(c)
}

func (w *Window) FillRect(x, y, width, height int, c color.Color) {
	vector.DrawFilledRect(w.screen, float32(x), float32(y), float32(width), float32(height), c, false)
}

// FillEllipse draws the circle inscribed in the box.
func (w *Window) FillEllipse(x, y, width, height int, c color.Color) {
	r := float32(min(width, height)) / 2
	vector.DrawFilledCircle(w.screen, float32(x)+float32(width)/2, float32(y)+float32(height)/2, r, c, true)
}

func (w *Window) Line(x1, y1, x2, y2 int, c color.Color) {
	vector.StrokeLine(w.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, c, true)
}

func (w *Window) Text(s string, x, y int, size platform.FontSize, c color.Color) {
	scale := 2.0
	if size == platform.FontTitle {
		scale = 4
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	w.screen.DrawImage(w.textImage(s), op)
}

// textImage renders s once in white and keeps it for later frames.
func (w *Window) textImage(s string) *ebiten.Image {
	if img, ok := w.texts[s]; ok {
		return img
	}
	img := ebiten.NewImage(max(len(s), 1)*glyphWidth, glyphHeight)
	ebitenutil.DebugPrint(img, s)
	w.texts[s] = img
	return img
}

// Run opens the window and blocks until the game quits or the window closes.
func Run(g platform.Game, fps int) error {
	ebiten.SetWindowSize(platform.Width, platform.Height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(fps)
	ebiten.SetWindowClosingHandled(true)

	return ebiten.RunGame(New(g))
}
