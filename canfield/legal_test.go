package canfield

import (
	"testing"

	utils "github.com/minaorangina/solitaire/internal"
	"github.com/stretchr/testify/assert"
)

func TestCardTest(t *testing.T) {
	cases := []struct {
		name string
		// dest holds the cards already on the destination
		destID int
		dest   []string
		card   string
		want   bool
	}{
		{"reserve never accepts", ReserveID, nil, "5H", false},
		{"empty tableau takes anything", 0, nil, "5H", true},
		{"tableau takes opposite colour one lower", 1, []string{"7S"}, "6H", true},
		{"tableau rejects same colour", 1, []string{"7S"}, "6C", false},
		{"tableau rejects a gap", 1, []string{"7S"}, "5H", false},
		{"tableau rejects higher", 1, []string{"7S"}, "8H", false},
		{"empty foundation takes the start rank", FirstFoundationID, nil, "9C", true},
		{"empty foundation rejects other ranks", FirstFoundationID, nil, "TC", false},
		{"foundation builds up in suit", 6, []string{"9H"}, "TH", true},
		{"foundation rejects the other red suit", 6, []string{"9H"}, "TD", false},
		{"foundation rejects a gap", 6, []string{"9H"}, "JH", false},
		{"foundation wraps from King to Ace", 7, []string{"KS"}, "AS", true},
		{"foundation does not wrap the other way", 7, []string{"AS"}, "KS", false},
		{"waste never accepts", WasteFrontID, nil, "5H", false},
		{"stock never accepts", StockID, nil, "5H", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rules, tbl := newTable(t, DrawOne)
			rules.startCardValue = 9

			arrange(t, tbl, c.destID, c.dest...)
			card := arrange(t, tbl, 3, c.card)[0]

			got := rules.CardTest(tbl, tbl.Stack(c.destID), card)
			if got != c.want {
				utils.TableFailureMessage(t, c.name, got, c.want)
			}
		})
	}
}

func TestCardTestCarriesTheCardsAbove(t *testing.T) {
	rules, tbl := newTable(t, DrawOne)
	rules.startCardValue = 9

	arrange(t, tbl, 0, "8S", "7H")
	arrange(t, tbl, 1, "9D")
	arrange(t, tbl, FirstFoundationID, "7S")
	bottom := tbl.Stack(0).Card(0)

	assert.True(t, rules.CardTest(tbl, tbl.Stack(1), bottom))
	assert.False(t, rules.CardTest(tbl, tbl.Stack(FirstFoundationID), bottom), "only a single card goes to a foundation")
	assert.True(t, rules.CardTest(tbl, tbl.Stack(FirstFoundationID+1), tbl.Stack(1).TopCard()))
}

func TestCanMove(t *testing.T) {
	rules, tbl := newTable(t, DrawOne)
	rules.startCardValue = 9

	card := arrange(t, tbl, 0, "6H")[0]
	dest := arrange(t, tbl, 1, "7S")[0]

	assert.True(t, rules.test(card, tbl.Stack(1)))
	assert.False(t, rules.test(card, tbl.Stack(0)), "a card never moves onto its own stack")

	card.FlipDown()
	assert.False(t, rules.test(card, tbl.Stack(1)))
	assert.True(t, rules.canMove(card, tbl.Stack(1), true, true), "auto-complete moves face down cards")

	card.FlipUp()
	dest.FlipDown()
	assert.False(t, rules.test(card, tbl.Stack(1)))
}

func TestAddCardToMovementTest(t *testing.T) {
	t.Run("only the frontmost waste card is playable", func(t *testing.T) {
		rules, tbl := newTable(t, DrawThree)
		back := arrange(t, tbl, WasteBackID, "2C", "3C")
		middle := arrange(t, tbl, WasteMiddleID, "4C")[0]
		front := arrange(t, tbl, WasteFrontID, "5C")[0]

		assert.True(t, rules.AddCardToMovementTest(tbl, front))
		assert.False(t, rules.AddCardToMovementTest(tbl, middle))
		assert.False(t, rules.AddCardToMovementTest(tbl, back[1]))

		dump(tbl, WasteFrontID)
		assert.True(t, rules.AddCardToMovementTest(tbl, middle))
		assert.False(t, rules.AddCardToMovementTest(tbl, back[1]))

		dump(tbl, WasteMiddleID)
		assert.True(t, rules.AddCardToMovementTest(tbl, back[1]))
	})

	t.Run("only the bottom or top card of a pile", func(t *testing.T) {
		rules, tbl := newTable(t, DrawOne)
		pile := arrange(t, tbl, 0, "8S", "7H", "6C")

		assert.True(t, rules.AddCardToMovementTest(tbl, pile[0]))
		assert.False(t, rules.AddCardToMovementTest(tbl, pile[1]))
		assert.True(t, rules.AddCardToMovementTest(tbl, pile[2]))
	})
}
