package deck

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Size is the number of cards in a single deck
const Size = 52

// Deck represents a deck of cards.
// The last element is the top of the deck.
type Deck []Card

// New creates an unshuffled deck of cards, suit by suit
func New() Deck {
	cards := make(Deck, 0, Size)
	for suit := range suitNames {
		for rank := range rankNames {
			cards = append(cards, NewCard(Rank(rank+1), Suit(suit)))
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards
func (d *Deck) Shuffle() {
	actualDeck := *d
	frand.Shuffle(len(actualDeck), func(i, j int) {
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	})
}

// ShuffleSeed shuffles the deck deterministically, so a deal can be replayed
func (d *Deck) ShuffleSeed(seed int64) {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, uint64(seed))

	actualDeck := *d
	frand.NewCustom(key, 32, 20).Shuffle(len(actualDeck), func(i, j int) {
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	})
}

// Deal deals n number of cards from the top of the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := (*d)[startingIndex:numCardsInDeck]
	*d = (*d)[:startingIndex]
	return subSlice
}
