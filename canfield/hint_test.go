package canfield

import (
	"testing"

	"github.com/minaorangina/solitaire/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHintTest(t *testing.T) {
	c, tbl := newTable(t, DrawOne)
	c.startCardValue = 9

	arrange(t, tbl, 0, "8S")
	arrange(t, tbl, 1, "9H")
	arrange(t, tbl, 2, "KC")
	arrange(t, tbl, 3, "KD")
	reserve := arrange(t, tbl, ReserveID, "2C", "QH")
	reserve[0].FlipDown()
	arrange(t, tbl, WasteFrontID, "7D")

	want := []struct {
		card string
		dest int
	}{
		{"8S", 1},
		{"9H", FirstFoundationID},
		{"7D", 0},
	}

	for _, w := range want {
		hint := c.HintTest(tbl)
		require.NotNil(t, hint, "expected %s onto %d", w.card, w.dest)
		assert.Equal(t, w.card, hint.Card.Code())
		assert.Equal(t, w.dest, hint.Stack.ID())
		tbl.Hint.Visit(hint.Card)
	}

	assert.Nil(t, c.HintTest(tbl))

	tbl.Hint.Reset()
	hint := c.HintTest(tbl)
	require.NotNil(t, hint)
	assert.Equal(t, "8S", hint.Card.Code())
}

func TestHintTestBlockedWaste(t *testing.T) {
	c, tbl := newTable(t, DrawThree)
	c.startCardValue = 9

	arrange(t, tbl, 0, "KC")
	arrange(t, tbl, 1, "KD")
	arrange(t, tbl, 2, "KS")
	arrange(t, tbl, 3, "KH")
	arrange(t, tbl, WasteMiddleID, "9C")
	arrange(t, tbl, WasteFrontID, "2D")

	assert.Nil(t, c.HintTest(tbl), "the middle card is covered")

	dump(tbl, WasteFrontID)
	hint := c.HintTest(tbl)
	require.NotNil(t, hint)
	assert.Equal(t, "9C", hint.Card.Code())
	assert.Equal(t, FirstFoundationID, hint.Stack.ID())
}

func TestDoubleTapTest(t *testing.T) {
	t.Run("foundation first", func(t *testing.T) {
		c, tbl := newTable(t, DrawOne)
		c.startCardValue = 9

		arrange(t, tbl, 0, "TS")
		card := arrange(t, tbl, 1, "9H")[0]

		dest := c.DoubleTapTest(tbl, card)
		require.NotNil(t, dest)
		assert.Equal(t, FirstFoundationID, dest.ID())
	})

	t.Run("then the tableau", func(t *testing.T) {
		c, tbl := newTable(t, DrawOne)
		c.startCardValue = 2

		arrange(t, tbl, 0, "KC")
		arrange(t, tbl, 1, "TS")
		card := arrange(t, tbl, WasteFrontID, "9H")[0]

		dest := c.DoubleTapTest(tbl, card)
		require.NotNil(t, dest)
		assert.Equal(t, 1, dest.ID())
	})

	t.Run("a lone King still finds an empty space", func(t *testing.T) {
		c, tbl := newTable(t, DrawOne)
		c.startCardValue = 2

		arrange(t, tbl, 0, "KC")
		arrange(t, tbl, 1, "JD")
		arrange(t, tbl, 2, "QH")
		card := tbl.Stack(0).Card(0)

		dest := c.DoubleTapTest(tbl, card)
		require.NotNil(t, dest)
		assert.Equal(t, 3, dest.ID())
	})

	t.Run("nowhere to go", func(t *testing.T) {
		c, tbl := newTable(t, DrawOne)
		c.startCardValue = 2

		arrange(t, tbl, 0, "KC")
		arrange(t, tbl, 1, "KD")
		arrange(t, tbl, 2, "KS")
		arrange(t, tbl, 3, "KH")
		card := arrange(t, tbl, WasteFrontID, "5H")[0]

		assert.Nil(t, c.DoubleTapTest(tbl, card))
	})
}

func TestAutoComplete(t *testing.T) {
	t.Run("never offered", func(t *testing.T) {
		c, tbl := dealt(t, DrawOne, 5)
		assert.False(t, c.AutoCompleteStartTest(tbl))
		assert.Nil(t, c.AutoCompletePhaseOne(tbl))
	})

	t.Run("tableau tops before the stock", func(t *testing.T) {
		c, tbl := newTable(t, DrawOne)
		c.startCardValue = 9

		arrange(t, tbl, FirstFoundationID, "9H")
		arrange(t, tbl, 2, "TH")

		next := c.AutoCompletePhaseTwo(tbl)
		require.NotNil(t, next)
		assert.Equal(t, "TH", next.Card.Code())
		assert.Equal(t, FirstFoundationID, next.Stack.ID())
	})

	t.Run("buried stock cards are found face down", func(t *testing.T) {
		c, tbl := newTable(t, DrawOne)
		c.startCardValue = 9

		arrange(t, tbl, FirstFoundationID, "9H")
		buried := find(t, tbl, "TH")
		require.Equal(t, StockID, buried.Stack().ID())
		require.False(t, buried.IsUp())

		next := c.AutoCompletePhaseTwo(tbl)
		require.NotNil(t, next)
		assert.Equal(t, buried, next.Card)
		assert.False(t, buried.IsUp())

		tbl.Move(next.Card, next.Stack, table.Record)
		assert.Equal(t, []string{"9H", "TH"}, codes(tbl.Stack(FirstFoundationID)))
	})
}
