package core

import (
	"time"

	"golang.org/x/exp/rand"
)

type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
)

func (m Mode) String() string {
	if m == ModePlaying {
		return "Playing"
	}
	return "Menu"
}

type Score struct {
	Player   int
	Opponent int
}

// Outcome is the set of things that happened during one Update.
type Outcome uint8

const (
	OutcomeWallBounce Outcome = 1 << iota
	OutcomePlayerHit
	OutcomeOpponentHit
	OutcomePlayerScored
	OutcomeOpponentScored

	OutcomePaddleHit = OutcomePlayerHit | OutcomeOpponentHit
)

// Has reports whether any bit of flag is set.
func (o Outcome) Has(flag Outcome) bool {
	return o&flag != 0
}

// GameState is everything the loop mutates. It is owned by a single
// controller and is not safe for concurrent use.
type GameState struct {
	Mode     Mode
	Player   Paddle
	Opponent Paddle
	Ball     Ball
	Score    Score
	Inverted bool // 球碰到球拍時反轉顏色

	rng *rand.Rand
}

// NewGameState builds a fresh game in menu mode. A nil rng is seeded from
// the clock.
func NewGameState(rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	s := &GameState{
		Mode:     ModeMenu,
		Player:   NewPaddle(SideLeft),
		Opponent: NewPaddle(SideRight),
		rng:      rng,
	}
	s.Ball = NewBall(rng)
	return s
}

// NewBall returns a ball centred on the field, heading in one of the four
// diagonal directions with equal probability.
func NewBall(rng *rand.Rand) Ball {
	return Ball{GameObject: GameObject{
		Rect: Rect{X: FieldWidth/2 - BallSize/2, Y: FieldHeight/2 - BallSize/2,
			Width: BallSize, Height: BallSize},
		VelX: BallSpeed * (rng.Intn(2)*2 - 1),
		VelY: BallSpeed * (rng.Intn(2)*2 - 1),
	}}
}

// Start leaves the menu. There is no way back.
func (s *GameState) Start() {
	s.Mode = ModePlaying
}

// ResetBall serves a new ball from the centre and clears the inversion.
func (s *GameState) ResetBall() {
	s.Ball = NewBall(s.rng)
	s.Inverted = false
}

// Update advances the simulation by one frame. It does nothing in menu mode.
func (s *GameState) Update() Outcome {
	if s.Mode != ModePlaying {
		return 0
	}
	var out Outcome

	//兩個球拍
	s.Player.Move(FieldHeight)
	s.Opponent.Move(FieldHeight)

	//球
	s.Ball.Advance()

	//檢查有沒有撞到上下牆壁
	if isCollidesWithWall(&s.Ball) {
		s.Ball.VelY = -s.Ball.VelY
		out |= OutcomeWallBounce
	}

	//檢查是否有碰到球拍
	if isTouchPaddle(&s.Ball, &s.Player) {
		s.bounce()
		out |= OutcomePlayerHit
	}
	if isTouchPaddle(&s.Ball, &s.Opponent) {
		s.bounce()
		out |= OutcomeOpponentHit
	}

	if side, gone := isBallOutSide(&s.Ball); gone {
		if side == SideLeft {
			s.Score.Opponent += 1
			out |= OutcomeOpponentScored
		} else {
			s.Score.Player += 1
			out |= OutcomePlayerScored
		}
		s.ResetBall()
	}
	return out
}

func (s *GameState) bounce() {
	s.Ball.VelX = -s.Ball.VelX
	s.Inverted = !s.Inverted
}
