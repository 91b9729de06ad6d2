package canfield

import "github.com/minaorangina/solitaire/table"

// Deal lays out the table from a full stock. None of the moves are recorded.
// The draw mode chosen by the user becomes the active one here, so a change
// of preference only affects the next deal.
func (c *Canfield) Deal(t *table.Table) {
	c.drawMode = DrawMode(c.prefs.String(KeyDrawMode, string(DrawThree)))
	if !c.drawMode.Valid() {
		c.drawMode = DrawThree
	}
	c.prefs.PutString(KeyActiveDrawMode, string(c.drawMode))

	stock := t.Stack(StockID)
	dealTo := func(id int, up bool) {
		card := stock.TopCard()
		t.Move(card, t.Stack(id), table.NoRecord)
		if up {
			card.FlipUp()
		}
	}

	if c.drawMode == DrawThree {
		for id := WasteBackID; id <= WasteFrontID; id++ {
			dealTo(id, true)
		}
	} else {
		dealTo(WasteFrontID, true)
	}

	for id := FirstTableauID; id <= LastTableauID; id++ {
		dealTo(id, true)
	}

	for i := 0; i < reserveSize; i++ {
		dealTo(ReserveID, false)
	}
	t.Stack(ReserveID).TopCard().FlipUp()

	dealTo(FirstFoundationID, true)
	c.startCardValue = int(t.Stack(FirstFoundationID).TopCard().Rank)
}
