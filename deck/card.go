package deck

import "fmt"

// Rank represents a rank in a deck of cards, Ace (1) to King (13)
type Rank int

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankCodes = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K"}

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	if r < Ace || r > King {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r-1]
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

var suitCodes = []string{"C", "D", "H", "S"}

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Color is derived from a card's suit
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Card represents a playing card.
// Within a single deck a Card value is unique.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card. It panics on out of range arguments.
func NewCard(rank Rank, suit Suit) Card {
	if rank < Ace || rank > King || suit < Clubs || suit > Spades {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return Card{Rank: rank, Suit: suit}
}

// Color returns Red for Hearts and Diamonds, Black otherwise
func (c Card) Color() Color {
	if c.Suit == Hearts || c.Suit == Diamonds {
		return Red
	}
	return Black
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Code returns the two character code of a card, e.g. "QH"
func (c Card) Code() string {
	return rankCodes[c.Rank-1] + suitCodes[c.Suit]
}

// ParseCode is the inverse of Code
func ParseCode(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("invalid card code %q", code)
	}
	rank, suit := -1, -1
	for i, rc := range rankCodes {
		if rc == code[:1] {
			rank = i + 1
		}
	}
	for i, sc := range suitCodes {
		if sc == code[1:] {
			suit = i
		}
	}
	if rank < 0 || suit < 0 {
		return Card{}, fmt.Errorf("invalid card code %q", code)
	}
	return Card{Rank: Rank(rank), Suit: Suit(suit)}, nil
}
