package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/minaorangina/solitaire"
	"github.com/minaorangina/solitaire/canfield"
	"github.com/minaorangina/solitaire/deck"
	"github.com/minaorangina/solitaire/prefs"
	"github.com/minaorangina/solitaire/protocol"
	"github.com/minaorangina/solitaire/store"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidDrawMode = errors.New("invalid draw mode")
)

// drawModer is implemented by rules with a choice of draw mode
type drawModer interface {
	DrawMode() canfield.DrawMode
	SetDrawMode(canfield.DrawMode)
}

// sessionPrefsPrefix scopes a session's settings within the server's prefs
const sessionPrefsPrefix = "game."

// newRules builds the rules for a new session. Each session keeps its
// per-deal state under its own game ID; the chosen draw mode is shared.
func (g *GameServer) newRules(gameID string) (solitaire.Rules, error) {
	p := g.sessionPrefs(gameID)
	if !p.Has(canfield.KeyDrawMode) {
		p.PutString(canfield.KeyDrawMode, g.prefs.String(canfield.KeyDrawMode, string(g.drawMode)))
	}
	return canfield.New(p), nil
}

func (g *GameServer) sessionPrefs(gameID string) *prefs.Prefs {
	return g.prefs.Scope(sessionPrefsPrefix + gameID + ".")
}

// chooseDrawMode stores a requested draw mode for this and later games
func (g *GameServer) chooseDrawMode(drawMode string) error {
	if drawMode == "" {
		return nil
	}
	if !canfield.DrawMode(drawMode).Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDrawMode, drawMode)
	}
	g.prefs.PutString(canfield.KeyDrawMode, drawMode)
	return nil
}

// apply runs one command against a session and describes the result.
// The message is always usable, carrying the error when there is one.
func (g *GameServer) apply(s *store.Session, in protocol.InboundMessage) (protocol.OutboundMessage, error) {
	var msg protocol.OutboundMessage

	cmdErr := s.Do(func(game *solitaire.Game) error {
		var (
			hint  *protocol.HintState
			moves int
		)

		err := func() error {
			switch in.Command {
			case protocol.Deal:
				if err := g.chooseDrawMode(in.DrawMode); err != nil {
					return err
				}
				if dm, ok := game.Rules().(drawModer); ok && in.DrawMode != "" {
					dm.SetDrawMode(canfield.DrawMode(in.DrawMode))
				}
				d := deck.New()
				g.shuffle(&d)
				return game.Deal(d)

			case protocol.TapStock:
				return game.TapStock()

			case protocol.Move:
				card, err := game.CardAt(in.Stack, in.Index)
				if err != nil {
					return err
				}
				dest, err := game.StackAt(in.Dest)
				if err != nil {
					return err
				}
				return game.Move(card, dest)

			case protocol.DoubleTap:
				card, err := game.CardAt(in.Stack, in.Index)
				if err != nil {
					return err
				}
				_, err = game.DoubleTap(card)
				return err

			case protocol.Hint:
				hint = solitaire.BuildHintState(game.Hint())
				return nil

			case protocol.AutoComplete:
				n, err := game.AutoComplete()
				moves = n
				return err

			case protocol.Undo:
				return game.Undo()

			case protocol.State:
				return nil
			}

			return fmt.Errorf("%w: %s", ErrUnknownCommand, in.Command)
		}()

		if err != nil {
			msg = game.BuildErrorMessage(in.Command, s.ID(), err)
		} else {
			msg = game.BuildMessage(in.Command, s.ID())
		}
		msg.Hint = hint
		msg.Moves = moves
		msg.Flips = solitaire.BuildCardStates(s.Flipped())
		if dm, ok := game.Rules().(drawModer); ok {
			msg.DrawMode = string(dm.DrawMode())
		}

		return err
	})

	log := g.log.WithFields(logrus.Fields{
		"game_id": s.ID(),
		"command": in.Command.String(),
		"score":   msg.Score,
	})
	if cmdErr != nil {
		log.WithError(cmdErr).Info("command rejected")
	} else {
		log.Debug("command applied")
	}

	return msg, cmdErr
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, store.ErrUnknownGameID):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownCommand),
		errors.Is(err, ErrInvalidDrawMode),
		errors.Is(err, solitaire.ErrUnknownStack),
		errors.Is(err, solitaire.ErrUnknownCard):
		return http.StatusBadRequest
	case errors.Is(err, solitaire.ErrIllegalMove),
		errors.Is(err, solitaire.ErrNotMovable),
		errors.Is(err, solitaire.ErrNoMove),
		errors.Is(err, solitaire.ErrNothingToUndo),
		errors.Is(err, solitaire.ErrGameOver),
		errors.Is(err, solitaire.ErrNotDealt):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
