// Package table holds the card and stack primitives shared by every
// solitaire variant: the stacks themselves, the undo history and the
// hint session. It knows nothing about the rules of any variant.
package table

import "github.com/minaorangina/solitaire/deck"

// Option controls how a move is written to the history
type Option int

const (
	// Record adds the move to the history as a new entry
	Record Option = iota
	// NoRecord bypasses the history entirely
	NoRecord
	// ReversedRecord adds the move as a new entry, last card first
	ReversedRecord
)

// Animator receives fire-and-forget flip animation requests.
// It never feeds state back into the table.
type Animator interface {
	Flip(c *Card)
}

type noopAnimator struct{}

func (noopAnimator) Flip(*Card) {}

// Event is a scoring-relevant change: a recorded transfer of cards,
// or an animated flip, where origin and destination are the same stack.
type Event struct {
	Cards          []*Card
	OriginIDs      []int
	DestinationIDs []int
}

// Table is the per-deal state passed into every rules method
type Table struct {
	Stacks  []*Stack
	History *History
	Hint    *HintSession

	animator Animator
	events   []Event
}

// New constructs a table with numStacks empty stacks
func New(numStacks int, animator Animator) *Table {
	if animator == nil {
		animator = noopAnimator{}
	}
	t := &Table{
		Stacks:   make([]*Stack, numStacks),
		History:  NewHistory(),
		Hint:     NewHintSession(),
		animator: animator,
	}
	for i := range t.Stacks {
		t.Stacks[i] = newStack(i)
	}
	return t
}

// Stack returns the stack with the given ID
func (t *Table) Stack(id int) *Stack {
	return t.Stacks[id]
}

// Load empties every stack, clears the history and hint session,
// and places cards face down on the stack with the given ID.
// The last card becomes the top card.
func (t *Table) Load(cards []deck.Card, stackID int) {
	for _, s := range t.Stacks {
		for _, c := range s.cards {
			c.stack = nil
		}
		s.cards = []*Card{}
	}
	t.History.Clear()
	t.Hint.Reset()
	t.events = nil

	dest := t.Stacks[stackID]
	for _, dc := range cards {
		dest.push(&Card{Card: dc})
	}
}

// Count returns the number of cards on the table
func (t *Table) Count() int {
	n := 0
	for _, s := range t.Stacks {
		n += s.Size()
	}
	return n
}

// Move moves a single card onto dest
func (t *Table) Move(c *Card, dest *Stack, opt Option) {
	t.MoveCards([]*Card{c}, dest, opt)
}

// MoveCards moves cards onto dest in order.
// Unless opt is NoRecord, the move is added to the history as one entry
// and reported as an Event.
func (t *Table) MoveCards(cards []*Card, dest *Stack, opt Option) {
	if len(cards) == 0 {
		return
	}

	items := make([]Item, len(cards))
	for i, c := range cards {
		items[i] = ItemOf(c)
	}
	for _, c := range cards {
		if c.stack != nil {
			c.stack.remove(c)
		}
		dest.push(c)
	}

	switch opt {
	case NoRecord:
		return
	case ReversedRecord:
		reversed := make([]Item, len(items))
		for i, item := range items {
			reversed[len(items)-1-i] = item
		}
		t.History.Add(reversed)
	default:
		t.History.Add(items)
	}

	ev := Event{
		Cards:          append([]*Card{}, cards...),
		OriginIDs:      make([]int, len(items)),
		DestinationIDs: make([]int, len(items)),
	}
	for i, item := range items {
		ev.OriginIDs[i] = item.Origin.ID()
		ev.DestinationIDs[i] = dest.ID()
	}
	t.events = append(t.events, ev)
}

// FlipWithAnimation turns a face down card up, records the flip on the
// most recent history entry and asks the animator to play it.
func (t *Table) FlipWithAnimation(c *Card) {
	if c.up {
		return
	}
	c.up = true
	if t.History.Len() > 0 {
		t.History.AddFlip(c)
	}
	id := c.stack.ID()
	t.events = append(t.events, Event{
		Cards:          []*Card{c},
		OriginIDs:      []int{id},
		DestinationIDs: []int{id},
	})
	t.animator.Flip(c)
}

// TakeEvents returns and clears the events reported since the last call
func (t *Table) TakeEvents() []Event {
	events := t.events
	t.events = nil
	return events
}
