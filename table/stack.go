package table

// Stack is an ordered pile of cards, bottom first.
type Stack struct {
	id    int
	cards []*Card
}

func newStack(id int) *Stack {
	return &Stack{id: id, cards: []*Card{}}
}

// ID returns the stack's fixed position in the table
func (s *Stack) ID() int {
	return s.id
}

func (s *Stack) Size() int {
	return len(s.cards)
}

func (s *Stack) IsEmpty() bool {
	return len(s.cards) == 0
}

// TopCard returns the top card, or nil if the stack is empty
func (s *Stack) TopCard() *Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[len(s.cards)-1]
}

// Card returns the card at index i, counted from the bottom
func (s *Stack) Card(i int) *Card {
	if i < 0 || i >= len(s.cards) {
		return nil
	}
	return s.cards[i]
}

// CardFromTop returns the card n places below the top card.
// CardFromTop(0) is the top card.
func (s *Stack) CardFromTop(n int) *Card {
	return s.Card(len(s.cards) - 1 - n)
}

// IndexOf returns the position of c in the stack, or -1
func (s *Stack) IndexOf(c *Card) int {
	for i, sc := range s.cards {
		if sc == c {
			return i
		}
	}
	return -1
}

func (s *Stack) Contains(c *Card) bool {
	return s.IndexOf(c) >= 0
}

// Cards returns a copy of the stack's cards, bottom first
func (s *Stack) Cards() []*Card {
	cards := make([]*Card, len(s.cards))
	copy(cards, s.cards)
	return cards
}

// CardsFrom returns c and every card lying on top of it
func (s *Stack) CardsFrom(c *Card) []*Card {
	idx := s.IndexOf(c)
	if idx < 0 {
		return nil
	}
	cards := make([]*Card, len(s.cards)-idx)
	copy(cards, s.cards[idx:])
	return cards
}

func (s *Stack) push(c *Card) {
	s.cards = append(s.cards, c)
	c.stack = s
}

// insert puts c at index i, or on top when i is past the top
func (s *Stack) insert(c *Card, i int) {
	if i < 0 || i >= len(s.cards) {
		s.push(c)
		return
	}
	s.cards = append(s.cards[:i+1], s.cards[i:]...)
	s.cards[i] = c
	c.stack = s
}

func (s *Stack) remove(c *Card) {
	idx := s.IndexOf(c)
	if idx < 0 {
		return
	}
	s.cards = append(s.cards[:idx], s.cards[idx+1:]...)
	c.stack = nil
}
