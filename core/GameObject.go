package core

// 球場大小
const (
	FieldWidth  = 800
	FieldHeight = 600
)

const (
	PaddleWidth  = 10
	PaddleHeight = 100
	PaddleMargin = 50 // 球拍與左右邊界的距離
	PaddleSpeed  = 10
	BallSize     = 30
	BallSpeed    = 7
)

// Side tells which end of the field a paddle defends.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Rect is an axis-aligned box; X, Y is the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.Height }

func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Overlaps reports whether a and b share area. Boxes that only touch along
// an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

type GameObject struct {
	Rect
	VelX, VelY int
}

type Ball struct {
	GameObject
}

// Advance moves the ball by its velocity.
func (b *Ball) Advance() {
	b.X += b.VelX
	b.Y += b.VelY
}

type Paddle struct {
	GameObject
	Side  Side
	Speed int
}

func NewPaddle(side Side) Paddle {
	x := PaddleMargin
	if side == SideRight {
		x = FieldWidth - PaddleMargin - PaddleWidth
	}
	return Paddle{
		GameObject: GameObject{Rect: Rect{X: x, Y: FieldHeight/2 - PaddleHeight/2,
			Width: PaddleWidth, Height: PaddleHeight}},
		Side:  side,
		Speed: PaddleSpeed,
	}
}

func (p *Paddle) MoveUp() {
	p.VelY = -p.Speed
}

func (p *Paddle) MoveDown() {
	p.VelY = p.Speed
}

func (p *Paddle) Stop() {
	p.VelY = 0
}

// Move applies the vertical velocity and keeps the paddle inside
// [0, limit-Height].
func (p *Paddle) Move(limit int) {
	p.Y += p.VelY
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Bottom() > limit {
		p.Y = limit - p.Height
	}
}
