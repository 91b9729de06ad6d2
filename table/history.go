package table

import "errors"

var ErrNothingToUndo = errors.New("nothing to undo")

// Item is one card relocation within an Entry.
// Index and Up are the card's position and face before it left Origin.
type Item struct {
	Card   *Card
	Origin *Stack
	Index  int
	Up     bool
}

// ItemOf captures where c lies now. Call it before moving c.
func ItemOf(c *Card) Item {
	return Item{Card: c, Origin: c.stack, Index: c.Index(), Up: c.up}
}

// Entry is one atomic, undoable action
type Entry struct {
	Items []Item
	// Flips are cards turned face up by the action, turned back down on undo.
	Flips  []*Card
	Points int
}

// History is the list of undoable entries, oldest first
type History struct {
	entries []*Entry
}

func NewHistory() *History {
	return &History{entries: []*Entry{}}
}

func (h *History) Len() int {
	return len(h.entries)
}

// Last returns the most recent entry, or nil
func (h *History) Last() *Entry {
	if len(h.entries) == 0 {
		return nil
	}
	return h.entries[len(h.entries)-1]
}

// Add creates a new entry
func (h *History) Add(items []Item) *Entry {
	e := &Entry{Items: append([]Item{}, items...)}
	h.entries = append(h.entries, e)
	return e
}

// lastOrNew returns the most recent entry, creating one if the history is empty
func (h *History) lastOrNew() *Entry {
	if e := h.Last(); e != nil {
		return e
	}
	return h.Add(nil)
}

// AddAtEndOfLastEntry extends the most recent entry, so the item is undone after it
func (h *History) AddAtEndOfLastEntry(item Item) {
	e := h.lastOrNew()
	e.Items = append(e.Items, item)
}

// AddInFrontOfLastEntry extends the most recent entry, so the items are undone before it
func (h *History) AddInFrontOfLastEntry(items []Item) {
	if len(items) == 0 {
		return
	}
	e := h.lastOrNew()
	e.Items = append(append([]Item{}, items...), e.Items...)
}

// AddFlip records a card turned face up by the most recent entry
func (h *History) AddFlip(c *Card) {
	e := h.lastOrNew()
	e.Flips = append(e.Flips, c)
}

// Clear drops every entry
func (h *History) Clear() {
	h.entries = []*Entry{}
}

// Undo reverts the most recent entry and removes it from the history.
// Items are returned to their origins in order, then flips are reverted.
// A card goes back to its old index, or on top if its origin is now shorter.
func (h *History) Undo() (*Entry, error) {
	e := h.Last()
	if e == nil {
		return nil, ErrNothingToUndo
	}
	h.entries = h.entries[:len(h.entries)-1]

	for _, item := range e.Items {
		if item.Card.stack != nil {
			item.Card.stack.remove(item.Card)
		}
		item.Origin.insert(item.Card, item.Index)
		item.Card.up = item.Up
	}
	for i := len(e.Flips) - 1; i >= 0; i-- {
		e.Flips[i].up = false
	}

	return e, nil
}
