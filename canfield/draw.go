package canfield

import "github.com/minaorangina/solitaire/table"

// OnMainStackTouch handles a tap on the stock.
func (c *Canfield) OnMainStackTouch(t *table.Table) {
	stock := t.Stack(StockID)

	switch {
	case !stock.IsEmpty() && c.drawMode == DrawThree:
		c.drawThree(t)

	case !stock.IsEmpty():
		card := stock.TopCard()
		t.Move(card, t.Stack(WasteFrontID), table.Record)
		card.FlipUp()

	case wasteSize(t) > 0:
		recycle(t)
	}
}

// drawThree gathers the fanned waste back onto the back pile, turns up to
// three cards onto it and fans the top two out again. The whole tap is one
// history entry, ordered so that undoing it rebuilds the previous fan
// exactly, however few cards were left in the stock.
func (c *Canfield) drawThree(t *table.Table) {
	back := t.Stack(WasteBackID)
	stock := t.Stack(StockID)

	var record []table.Item

	for _, id := range []int{WasteMiddleID, WasteFrontID} {
		pile := t.Stack(id)
		for !pile.IsEmpty() {
			card := pile.TopCard()
			record = append(record, table.ItemOf(card))
			t.Move(card, back, table.NoRecord)
		}
	}

	for i := 0; i < drawThreeCount && !stock.IsEmpty(); i++ {
		card := stock.TopCard()
		record = pushFront(record, table.ItemOf(card))
		t.Move(card, back, table.NoRecord)
		card.FlipUp()
	}

	record = fanOut(t, record)
	t.History.Add(record)
}

// fanOut moves the back pile's second card to the middle pile and its top
// card to the front pile. A fanned card not already in record is recorded
// as moved from the back pile.
func fanOut(t *table.Table, record []table.Item) []table.Item {
	back := t.Stack(WasteBackID)
	size := back.Size()

	if size > 1 {
		card := back.CardFromTop(1)
		item := table.ItemOf(card)
		t.Move(card, t.Stack(WasteMiddleID), table.NoRecord)
		if !containsCard(record, card) {
			record = pushFront(record, item)
		}
	}
	if size > 0 {
		card := back.TopCard()
		item := table.ItemOf(card)
		t.Move(card, t.Stack(WasteFrontID), table.NoRecord)
		if !containsCard(record, card) {
			record = pushFront(record, item)
		}
	}

	return record
}

// recycle turns the whole waste back over onto the stock, so the next
// pass draws the cards in the same order as the last one.
func recycle(t *table.Table) {
	var cards []*table.Card
	for id := WasteBackID; id <= WasteFrontID; id++ {
		cards = append(cards, t.Stack(id).Cards()...)
	}

	reversed := make([]*table.Card, len(cards))
	for i, card := range cards {
		reversed[len(cards)-1-i] = card
	}

	t.MoveCards(reversed, t.Stack(StockID), table.ReversedRecord)
	for _, card := range reversed {
		card.FlipDown()
	}
}

func wasteSize(t *table.Table) int {
	n := 0
	for id := WasteBackID; id <= WasteFrontID; id++ {
		n += t.Stack(id).Size()
	}
	return n
}

func pushFront(items []table.Item, item table.Item) []table.Item {
	return append([]table.Item{item}, items...)
}

func containsCard(items []table.Item, card *table.Card) bool {
	for _, item := range items {
		if item.Card == card {
			return true
		}
	}
	return false
}
