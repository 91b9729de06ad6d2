package solitaire

import "github.com/minaorangina/solitaire/table"

// Rules is implemented once per solitaire variant. Every method receives
// the table of the deal in progress; none of them block.
//
// Predicates and searches never fail: an illegal move is false, and a
// search that finds nothing returns nil.
type Rules interface {
	Name() string
	NumStacks() int
	// MainStackID is the stock the deck is loaded onto before dealing.
	MainStackID() int

	// Deal lays out a table whose cards are all on the main stack.
	Deal(t *table.Table)
	// CardTest reports whether card may be placed on dest.
	CardTest(t *table.Table, dest *table.Stack, card *table.Card) bool
	// AddCardToMovementTest reports whether card may be picked up.
	AddCardToMovementTest(t *table.Table, card *table.Card) bool
	// OnMainStackTouch handles a tap on the main stack.
	OnMainStackTouch(t *table.Table)
	// AfterMove stabilizes the table after every completed move.
	AfterMove(t *table.Table)

	HintTest(t *table.Table) *table.CardAndStack
	DoubleTapTest(t *table.Table, card *table.Card) *table.Stack
	AutoCompleteStartTest(t *table.Table) bool
	AutoCompletePhaseOne(t *table.Table) *table.CardAndStack
	AutoCompletePhaseTwo(t *table.Table) *table.CardAndStack

	// PointsForMove scores a move; originIDs and destinationIDs are
	// parallel to cards.
	PointsForMove(cards []*table.Card, originIDs, destinationIDs []int) int
	WinTest(t *table.Table) bool

	// Save and Load persist the variant's per-deal state.
	Save()
	Load()
}
