// Package game is the frame loop: read input, step the simulation, draw.
package game

import (
	"fmt"

	"pong/core"
	"pong/logger"
	"pong/platform"
)

// Controller owns the GameState and implements platform.Game.
type Controller struct {
	state *core.GameState
	keys  platform.Keyboard
	menu  *Menu
	log   *logger.Logger
}

func NewController(state *core.GameState, keys platform.Keyboard, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Log
	}
	return &Controller{
		state: state,
		keys:  keys,
		menu:  NewMenu(),
		log:   log,
	}
}

func (c *Controller) State() *core.GameState {
	return c.state
}

// Update runs input and simulation for one frame. It returns
// platform.ErrQuit when the player leaves; nothing is mutated on that frame.
func (c *Controller) Update() error {
	c.keys.Poll()

	if c.keys.QuitRequested() {
		return c.quit()
	}

	if c.state.Mode == core.ModeMenu {
		switch c.menu.Choose(c.keys) {
		case MenuStart:
			c.state.Start()
			c.log.Info(logger.GameStartMsg)
		case MenuQuit:
			return c.quit()
		default:
			return nil
		}
	}

	steer(&c.state.Player, c.keys.Pressed(platform.KeyW), c.keys.Pressed(platform.KeyS))
	steer(&c.state.Opponent, c.keys.Pressed(platform.KeyUp), c.keys.Pressed(platform.KeyDown))

	c.report(c.state.Update())
	return nil
}

// steer sets the paddle velocity. Up is checked first and wins a tie.
func steer(p *core.Paddle, up, down bool) {
	if up {
		p.MoveUp()
	} else if down {
		p.MoveDown()
	} else {
		p.Stop()
	}
}

func (c *Controller) report(out core.Outcome) {
	ball := c.state.Ball
	if out.Has(core.OutcomePlayerHit) {
		c.log.Debug(fmt.Sprintf(logger.PaddleHitMsg, "Player", ball.X, ball.Y))
	}
	if out.Has(core.OutcomeOpponentHit) {
		c.log.Debug(fmt.Sprintf(logger.PaddleHitMsg, "Opponent", ball.X, ball.Y))
	}
	score := c.state.Score
	if out.Has(core.OutcomePlayerScored) {
		c.log.Info(fmt.Sprintf(logger.ScoreMsg, "Player", score.Player, score.Opponent))
	}
	if out.Has(core.OutcomeOpponentScored) {
		c.log.Info(fmt.Sprintf(logger.ScoreMsg, "Opponent", score.Player, score.Opponent))
	}
}

func (c *Controller) quit() error {
	s := c.state
	c.log.Info(fmt.Sprintf(logger.QuitRequestMsg, s.Mode, s.Score.Player, s.Score.Opponent))
	return platform.ErrQuit
}

func (c *Controller) Draw(cv platform.Canvas) {
	if c.state.Mode == core.ModeMenu {
		c.menu.Draw(cv)
		return
	}
	drawField(cv, c.state)
}
