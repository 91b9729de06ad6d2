package canfield

import (
	"github.com/minaorangina/solitaire/deck"
	"github.com/minaorangina/solitaire/table"
)

// HintTest returns the first legal move whose card has not been suggested
// in the current hint session, or nil if there is none.
func (c *Canfield) HintTest(t *table.Table) *table.CardAndStack {
	for i := FirstTableauID; i <= ReserveID; i++ {
		origin := t.Stack(i)
		if origin.IsEmpty() {
			continue
		}

		// the whole pile onto another tableau pile
		card := origin.Card(0)
		if !t.Hint.Visited(card) && int(card.Rank) != c.startCardValue {
			for j := FirstTableauID; j <= LastTableauID; j++ {
				if j == i {
					continue
				}
				if c.test(card, t.Stack(j)) {
					return &table.CardAndStack{Card: card, Stack: t.Stack(j)}
				}
			}
		}

		card = origin.TopCard()
		if !t.Hint.Visited(card) {
			if dest := c.firstAccepting(t, card, FirstFoundationID, LastFoundationID); dest != nil {
				return &table.CardAndStack{Card: card, Stack: dest}
			}
		}
	}

	for i := FirstFoundationID; i <= LastFoundationID; i++ {
		card := t.Stack(i).TopCard()
		if card == nil || t.Hint.Visited(card) {
			continue
		}
		if dest := c.firstAccepting(t, card, FirstTableauID, LastTableauID); dest != nil {
			return &table.CardAndStack{Card: card, Stack: dest}
		}
	}

	for i := WasteBackID; i <= WasteFrontID; i++ {
		if (i < WasteFrontID && !t.Stack(WasteFrontID).IsEmpty()) ||
			(i == WasteBackID && !t.Stack(WasteMiddleID).IsEmpty()) {
			continue
		}

		card := t.Stack(i).TopCard()
		if card == nil || t.Hint.Visited(card) {
			continue
		}
		if dest := c.firstAccepting(t, card, FirstTableauID, LastTableauID); dest != nil {
			return &table.CardAndStack{Card: card, Stack: dest}
		}
		if dest := c.firstAccepting(t, card, FirstFoundationID, LastFoundationID); dest != nil {
			return &table.CardAndStack{Card: card, Stack: dest}
		}
	}

	return nil
}

// DoubleTapTest returns where a double tapped card should go, or nil.
// Foundations come first. A King at the bottom of a tableau pile is not
// moved to another empty pile unless nothing else fits.
func (c *Canfield) DoubleTapTest(t *table.Table, card *table.Card) *table.Stack {
	if card.IsTopCard() {
		if dest := c.firstAccepting(t, card, FirstFoundationID, LastFoundationID); dest != nil {
			return dest
		}
	}

	kingFromTableau := card.Rank == deck.King && card.IsFirstCard() && card.Stack().ID() <= ReserveID
	for j := FirstTableauID; j <= ReserveID; j++ {
		dest := t.Stack(j)
		if kingFromTableau && dest.IsEmpty() {
			continue
		}
		if c.test(card, dest) {
			return dest
		}
	}

	return c.firstAccepting(t, card, FirstTableauID, ReserveID)
}

// AutoCompleteStartTest is always false: auto-complete is never offered.
func (c *Canfield) AutoCompleteStartTest(*table.Table) bool {
	return false
}

func (c *Canfield) AutoCompletePhaseOne(*table.Table) *table.CardAndStack {
	return nil
}

// AutoCompletePhaseTwo finds a card for any foundation: first from the tops
// of the tableau and reserve, then from anywhere in the waste and stock.
// A waste or stock card found this way may still be face down.
func (c *Canfield) AutoCompletePhaseTwo(t *table.Table) *table.CardAndStack {
	for i := FirstFoundationID; i <= LastFoundationID; i++ {
		dest := t.Stack(i)

		for j := FirstTableauID; j <= ReserveID; j++ {
			card := t.Stack(j).TopCard()
			if card != nil && c.canMove(card, dest, true, true) {
				return &table.CardAndStack{Card: card, Stack: dest}
			}
		}

		for j := WasteBackID; j <= StockID; j++ {
			for _, card := range t.Stack(j).Cards() {
				if c.canMove(card, dest, true, true) {
					return &table.CardAndStack{Card: card, Stack: dest}
				}
			}
		}
	}

	return nil
}

// firstAccepting returns the lowest stack in [from, to] the card can move to
func (c *Canfield) firstAccepting(t *table.Table, card *table.Card, from, to int) *table.Stack {
	for id := from; id <= to; id++ {
		if dest := t.Stack(id); c.test(card, dest) {
			return dest
		}
	}
	return nil
}
