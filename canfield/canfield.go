// Package canfield implements the rules of Canfield solitaire.
//
// The table has 13 stacks with fixed IDs: four tableau piles (0–3), the
// reserve (4), four foundations (5–8), three waste piles (9–11) and the
// stock (12). In deal-3 mode the waste is fanned over piles 9–11 with the
// playable card always on the frontmost non-empty pile.
package canfield

import (
	"github.com/minaorangina/solitaire/prefs"
	"github.com/minaorangina/solitaire/table"
)

const (
	FirstTableauID    = 0
	LastTableauID     = 3
	ReserveID         = 4
	FirstFoundationID = 5
	LastFoundationID  = 8
	WasteBackID       = 9
	WasteMiddleID     = 10
	WasteFrontID      = 11
	StockID           = 12

	NumStacks = 13
)

const (
	reserveSize    = 13
	foundationSize = 13
	drawThreeCount = 3
)

// DrawMode is the number of cards turned per stock tap
type DrawMode string

const (
	DrawOne   DrawMode = "1"
	DrawThree DrawMode = "3"
)

// Valid reports whether m is a supported draw mode
func (m DrawMode) Valid() bool {
	return m == DrawOne || m == DrawThree
}

// Preference keys
const (
	KeyStartCardValue = "canfield_startCardValue"
	// KeyDrawMode is the user's chosen draw mode. It takes effect on the next deal.
	KeyDrawMode       = "pref_key_canfield_draw"
	// KeyActiveDrawMode is the draw mode of the deal in progress.
	KeyActiveDrawMode = "pref_key_canfield_draw_old"
)

// Canfield holds the per-deal rule state
type Canfield struct {
	prefs          *prefs.Prefs
	startCardValue int
	drawMode       DrawMode
}

// New constructs the rules, restoring the state of a deal in progress from p
func New(p *prefs.Prefs) *Canfield {
	if p == nil {
		p = prefs.New()
	}
	c := &Canfield{prefs: p}
	c.Load()
	return c
}

func (c *Canfield) Name() string {
	return "Canfield"
}

func (c *Canfield) NumStacks() int {
	return NumStacks
}

func (c *Canfield) MainStackID() int {
	return StockID
}

// StartCardValue is the rank every foundation starts from in this deal
func (c *Canfield) StartCardValue() int {
	return c.startCardValue
}

// DrawMode is the draw mode of the deal in progress
func (c *Canfield) DrawMode() DrawMode {
	return c.drawMode
}

// SetDrawMode stores the user's draw mode for the next deal
func (c *Canfield) SetDrawMode(m DrawMode) {
	c.prefs.PutString(KeyDrawMode, string(m))
}

func (c *Canfield) Save() {
	c.prefs.PutInt(KeyStartCardValue, c.startCardValue)
}

func (c *Canfield) Load() {
	c.startCardValue = c.prefs.Int(KeyStartCardValue, 0)
	c.drawMode = DrawMode(c.prefs.String(KeyActiveDrawMode, string(DrawOne)))
}

// WinTest reports whether every foundation is complete
func (c *Canfield) WinTest(t *table.Table) bool {
	for id := FirstFoundationID; id <= LastFoundationID; id++ {
		if t.Stack(id).Size() != foundationSize {
			return false
		}
	}
	return true
}

func isTableau(id int) bool {
	return id >= FirstTableauID && id <= LastTableauID
}

func isFoundation(id int) bool {
	return id >= FirstFoundationID && id <= LastFoundationID
}

func isWaste(id int) bool {
	return id >= WasteBackID && id <= WasteFrontID
}
