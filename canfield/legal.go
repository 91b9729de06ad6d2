package canfield

import (
	"github.com/minaorangina/solitaire/deck"
	"github.com/minaorangina/solitaire/table"
)

// CardTest reports whether card may be placed on dest. Only the top card
// of a stack moves on its own; any other card takes the cards above it along.
func (c *Canfield) CardTest(_ *table.Table, dest *table.Stack, card *table.Card) bool {
	return c.accepts(dest, card, card.IsTopCard())
}

func (c *Canfield) accepts(dest *table.Stack, card *table.Card, single bool) bool {
	id := dest.ID()
	top := dest.TopCard()

	switch {
	case id == ReserveID:
		return false

	case isTableau(id):
		return top == nil ||
			(top.Color() != card.Color() && top.Rank == card.Rank+1)

	case isFoundation(id) && single:
		if top == nil {
			return int(card.Rank) == c.startCardValue
		}
		// foundations wrap from King back to Ace
		return top.Suit == card.Suit &&
			((top.Rank == deck.King && card.Rank == deck.Ace) || top.Rank == card.Rank-1)
	}

	return false
}

// canMove is the full check for a suggested move: the card must be face up
// and not already on dest, and dest must show a face up card.
// While auto-completing, face down cards may move.
func (c *Canfield) canMove(card *table.Card, dest *table.Stack, single, autoComplete bool) bool {
	if card.Stack() == dest {
		return false
	}
	if !autoComplete {
		if !card.IsUp() {
			return false
		}
		if top := dest.TopCard(); top != nil && !top.IsUp() {
			return false
		}
	}
	return c.accepts(dest, card, single)
}

func (c *Canfield) test(card *table.Card, dest *table.Stack) bool {
	return c.canMove(card, dest, card.IsTopCard(), false)
}

// AddCardToMovementTest reports whether card may be picked up.
// Only the frontmost waste card is playable.
func (c *Canfield) AddCardToMovementTest(t *table.Table, card *table.Card) bool {
	id := card.Stack().ID()
	front := t.Stack(WasteFrontID)
	middle := t.Stack(WasteMiddleID)

	if (id == WasteBackID || id == WasteMiddleID) && !front.IsEmpty() {
		return false
	}
	if id == WasteBackID && !middle.IsEmpty() {
		return false
	}
	return card.IsFirstCard() || card.IsTopCard()
}
