// Package solitaire drives a game of solitaire for any variant that
// implements Rules: it applies player commands, keeps the score and runs
// the variant's stabilization after every move.
package solitaire

import (
	"errors"
	"fmt"

	"github.com/minaorangina/solitaire/deck"
	"github.com/minaorangina/solitaire/table"
)

var (
	ErrNilRules       = errors.New("rules are nil")
	ErrNotDealt       = errors.New("game has not been dealt")
	ErrGameOver       = errors.New("game is already over")
	ErrIncompleteDeck = errors.New("deck must hold 52 cards")
	ErrNotMovable     = errors.New("card cannot be picked up")
	ErrIllegalMove    = errors.New("illegal move")
	ErrNoMove         = errors.New("no move available")
	ErrUnknownStack   = errors.New("unknown stack")
	ErrUnknownCard    = errors.New("unknown card")
	ErrNothingToUndo  = table.ErrNothingToUndo
)

// Game is one session of solitaire. It is not safe for concurrent use.
type Game struct {
	rules Rules
	table *table.Table
	score int
	dealt bool
}

// NewGame constructs a game. The animator may be nil.
func NewGame(rules Rules, animator table.Animator) (*Game, error) {
	if rules == nil {
		return nil, ErrNilRules
	}
	return &Game{
		rules: rules,
		table: table.New(rules.NumStacks(), animator),
	}, nil
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Table() *table.Table {
	return g.table
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Dealt() bool {
	return g.dealt
}

func (g *Game) Won() bool {
	return g.dealt && g.rules.WinTest(g.table)
}

// Deal starts a new deal from d, which must already be shuffled.
// The last card of d is the top of the stock.
func (g *Game) Deal(d deck.Deck) error {
	if len(d) != deck.Size {
		return ErrIncompleteDeck
	}

	g.table.Load(d, g.rules.MainStackID())
	g.rules.Deal(g.table)
	g.rules.Save()
	g.table.TakeEvents()
	g.score = 0
	g.dealt = true

	return nil
}

// TapStock draws from the stock, or turns the waste over when it is empty
func (g *Game) TapStock() error {
	if err := g.playable(); err != nil {
		return err
	}

	before := g.table.History.Len()
	g.rules.OnMainStackTouch(g.table)
	if g.table.History.Len() == before {
		return nil
	}

	g.afterMove()
	return nil
}

// Move moves card, and every card on top of it, onto dest
func (g *Game) Move(card *table.Card, dest *table.Stack) error {
	if err := g.playable(); err != nil {
		return err
	}
	if err := g.pickUp(card); err != nil {
		return err
	}
	if card.Stack() == dest || !g.rules.CardTest(g.table, dest, card) {
		return fmt.Errorf("%w: %s onto stack %d", ErrIllegalMove, card, dest.ID())
	}

	g.move(card.Stack().CardsFrom(card), dest)
	return nil
}

// DoubleTap moves card to wherever the rules send it and returns that stack
func (g *Game) DoubleTap(card *table.Card) (*table.Stack, error) {
	if err := g.playable(); err != nil {
		return nil, err
	}
	if err := g.pickUp(card); err != nil {
		return nil, err
	}

	dest := g.rules.DoubleTapTest(g.table, card)
	if dest == nil {
		return nil, ErrNoMove
	}

	g.move(card.Stack().CardsFrom(card), dest)
	return dest, nil
}

// Hint suggests a move, cycling through every available move on repeated
// calls. It returns nil when there is no move at all.
func (g *Game) Hint() *table.CardAndStack {
	if g.playable() != nil {
		return nil
	}

	hint := g.rules.HintTest(g.table)
	if hint == nil && g.table.Hint.Len() > 0 {
		g.table.Hint.Reset()
		hint = g.rules.HintTest(g.table)
	}
	if hint != nil {
		g.table.Hint.Visit(hint.Card)
	}

	return hint
}

// CanAutoComplete reports whether the rules suggest offering auto-complete
// now. AutoComplete does not depend on it.
func (g *Game) CanAutoComplete() bool {
	return g.playable() == nil && g.rules.AutoCompleteStartTest(g.table)
}

// AutoComplete plays every move the rules find until none is left or the
// game is won. It returns the number of moves made.
func (g *Game) AutoComplete() (int, error) {
	if err := g.playable(); err != nil {
		return 0, err
	}

	moves := 0
	for _, phase := range []func(*table.Table) *table.CardAndStack{
		g.rules.AutoCompletePhaseOne,
		g.rules.AutoCompletePhaseTwo,
	} {
		for !g.Won() {
			next := phase(g.table)
			if next == nil {
				break
			}
			g.move([]*table.Card{next.Card}, next.Stack)
			moves++
		}
	}

	return moves, nil
}

// Undo reverts the most recent move, along with anything the rules did
// in response to it
func (g *Game) Undo() error {
	if !g.dealt {
		return ErrNotDealt
	}

	entry, err := g.table.History.Undo()
	if err != nil {
		return err
	}

	g.score -= entry.Points
	g.table.Hint.Reset()
	g.table.TakeEvents()
	return nil
}

// StackAt returns the stack with the given ID
func (g *Game) StackAt(id int) (*table.Stack, error) {
	if id < 0 || id >= len(g.table.Stacks) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStack, id)
	}
	return g.table.Stack(id), nil
}

// CardAt returns the card at index of the stack with the given ID
func (g *Game) CardAt(stackID, index int) (*table.Card, error) {
	s, err := g.StackAt(stackID)
	if err != nil {
		return nil, err
	}
	card := s.Card(index)
	if card == nil {
		return nil, fmt.Errorf("%w: stack %d index %d", ErrUnknownCard, stackID, index)
	}
	return card, nil
}

func (g *Game) playable() error {
	if !g.dealt {
		return ErrNotDealt
	}
	if g.Won() {
		return ErrGameOver
	}
	return nil
}

// pickUp checks that a player may take hold of card. Cards on the main
// stack are only ever moved by tapping it.
func (g *Game) pickUp(card *table.Card) error {
	if card == nil || card.Stack() == nil {
		return ErrUnknownCard
	}
	if !card.IsUp() || card.Stack().ID() == g.rules.MainStackID() ||
		!g.rules.AddCardToMovementTest(g.table, card) {
		return ErrNotMovable
	}
	return nil
}

// move records the move, turns up a card left face down on the origin
// and lets the rules stabilize the table. Auto-complete can move a face
// down card; it lands face up and goes back down on undo.
func (g *Game) move(cards []*table.Card, dest *table.Stack) {
	origin := cards[0].Stack()
	g.table.MoveCards(cards, dest, table.Record)
	for _, c := range cards {
		c.FlipUp()
	}

	if origin.ID() != g.rules.MainStackID() {
		if top := origin.TopCard(); top != nil && !top.IsUp() {
			g.table.FlipWithAnimation(top)
		}
	}

	g.afterMove()
}

func (g *Game) afterMove() {
	g.table.Hint.Reset()
	g.rules.AfterMove(g.table)

	for _, ev := range g.table.TakeEvents() {
		points := g.rules.PointsForMove(ev.Cards, ev.OriginIDs, ev.DestinationIDs)
		g.score += points
		if last := g.table.History.Last(); last != nil {
			last.Points += points
		}
	}
}
