package core

// isCollidesWithWall reports whether the ball touches the top or bottom
// edge. The ball is not pushed back inside; it may overlap the wall for a frame.
func isCollidesWithWall(ball *Ball) bool {
	return ball.Top() <= 0 || ball.Bottom() >= FieldHeight
}

// isTouchPaddle only honours a hit while the ball travels toward the paddle,
// so a ball still overlapping after a bounce is not reflected again.
func isTouchPaddle(ball *Ball, paddle *Paddle) bool {
	if !Overlaps(ball.Rect, paddle.Rect) {
		return false
	}
	if paddle.Side == SideLeft {
		return ball.VelX < 0
	}
	return ball.VelX > 0
}

// isBallOutSide returns the side the ball left through.
func isBallOutSide(ball *Ball) (Side, bool) {
	if ball.Left() <= 0 {
		return SideLeft, true
	}
	if ball.Right() >= FieldWidth {
		return SideRight, true
	}
	return SideLeft, false
}
