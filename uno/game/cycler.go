package game

const (
	left  = -1
	right = 1
)

// NextSeat is the seat after current when moving in direction.
func NextSeat(current int, direction int, seatCount int) int {
	return (current + direction + seatCount) % seatCount
}

// Cycler tracks the current seat and the direction of play.
type Cycler struct {
	seats     int
	current   int
	direction int
}

func NewCycler(seats int) *Cycler {
	return &Cycler{
		seats:     seats,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

// Peek returns the next seat without moving.
func (c *Cycler) Peek() int {
	return NextSeat(c.current, c.direction, c.seats)
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}
