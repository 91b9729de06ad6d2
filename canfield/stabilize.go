package canfield

import "github.com/minaorangina/solitaire/table"

// AfterMove runs after every completed move. Empty tableau piles are
// refilled from the reserve, or from the stock once the reserve is gone,
// and in deal-3 mode the waste fan is topped up. These moves join the
// previous history entry so they are undone with the move that caused them.
func (c *Canfield) AfterMove(t *table.Table) {
	if c.WinTest(t) {
		return
	}

	reserve := t.Stack(ReserveID)
	stock := t.Stack(StockID)

	for id := FirstTableauID; id <= LastTableauID; id++ {
		pile := t.Stack(id)
		if !pile.IsEmpty() {
			continue
		}

		switch {
		case !reserve.IsEmpty():
			card := reserve.TopCard()
			item := table.ItemOf(card)
			t.Move(card, pile, table.NoRecord)
			t.History.AddAtEndOfLastEntry(item)

			if top := reserve.TopCard(); top != nil {
				t.FlipWithAnimation(top)
			}

		case !stock.IsEmpty():
			card := stock.TopCard()
			item := table.ItemOf(card)
			card.FlipUp()
			t.Move(card, pile, table.NoRecord)
			t.History.AddAtEndOfLastEntry(item)
		}
	}

	if c.drawMode != DrawThree {
		return
	}

	middle := t.Stack(WasteMiddleID)
	front := t.Stack(WasteFrontID)
	if !middle.IsEmpty() && !front.IsEmpty() {
		return
	}

	back := t.Stack(WasteBackID)
	var record []table.Item
	for !middle.IsEmpty() {
		card := middle.TopCard()
		record = pushFront(record, table.ItemOf(card))
		t.Move(card, back, table.NoRecord)
	}

	record = fanOut(t, record)
	t.History.AddInFrontOfLastEntry(record)
}
