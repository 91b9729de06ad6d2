package table

import "github.com/minaorangina/solitaire/deck"

// Card is a playing card placed on the table.
// The same *Card moves between stacks for the lifetime of a deal.
type Card struct {
	deck.Card
	up    bool
	stack *Stack
}

// IsUp reports whether the card is face up
func (c *Card) IsUp() bool {
	return c.up
}

// FlipUp turns the card face up without animation
func (c *Card) FlipUp() {
	c.up = true
}

// FlipDown turns the card face down without animation
func (c *Card) FlipDown() {
	c.up = false
}

// Stack returns the stack the card currently lies on
func (c *Card) Stack() *Stack {
	return c.stack
}

// Index returns the card's position in its stack, counted from the bottom
func (c *Card) Index() int {
	if c.stack == nil {
		return -1
	}
	return c.stack.IndexOf(c)
}

// IsTopCard reports whether no card lies on top of this one
func (c *Card) IsTopCard() bool {
	return c.stack != nil && c.stack.TopCard() == c
}

// IsFirstCard reports whether the card is at the bottom of its stack
func (c *Card) IsFirstCard() bool {
	return c.stack != nil && c.Index() == 0
}
