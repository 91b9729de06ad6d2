package deck

import (
	"testing"

	utils "github.com/minaorangina/solitaire/internal"
	"github.com/stretchr/testify/assert"
)

var fullDeckCount = 52

func TestDeck(t *testing.T) {
	deckOfCards := New()

	if len(deckOfCards) != fullDeckCount {
		utils.FailureMessage(t, len(deckOfCards), fullDeckCount)
	}

	t.Run("cards are unique", func(t *testing.T) {
		seen := map[Card]struct{}{}
		for _, c := range deckOfCards {
			_, ok := seen[c]
			assert.False(t, ok, "duplicate %s", c)
			seen[c] = struct{}{}
		}
	})

	t.Run("deals from the top", func(t *testing.T) {
		d := New()
		top := d[len(d)-1]

		dealt := d.Deal(3)
		utils.AssertEqual(t, len(dealt), 3)
		utils.AssertEqual(t, dealt[2], top)
		utils.AssertEqual(t, len(d), fullDeckCount-3)
	})

	t.Run("won't deal more than it holds", func(t *testing.T) {
		d := New()
		assert.Empty(t, d.Deal(fullDeckCount+1))
		assert.Empty(t, d.Deal(-1))
		utils.AssertEqual(t, len(d), fullDeckCount)
	})
}

func TestShuffle(t *testing.T) {
	t.Run("seeded shuffles are repeatable", func(t *testing.T) {
		a, b := New(), New()
		a.ShuffleSeed(42)
		b.ShuffleSeed(42)
		assert.Equal(t, a, b)
		assert.NotEqual(t, New(), a)
		assert.ElementsMatch(t, New(), a)

		c := New()
		c.ShuffleSeed(43)
		assert.NotEqual(t, a, c)
	})

	t.Run("shuffle keeps every card", func(t *testing.T) {
		d := New()
		d.Shuffle()
		assert.ElementsMatch(t, New(), d)
	})
}
