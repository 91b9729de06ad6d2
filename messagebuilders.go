package solitaire

import (
	"github.com/minaorangina/solitaire/protocol"
	"github.com/minaorangina/solitaire/table"
)

// BuildMessage describes the whole game in reply to cmd
func (g *Game) BuildMessage(cmd protocol.Cmd, gameID string) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		Command:         cmd,
		GameID:          gameID,
		Table:           g.BuildTableState(),
		Score:           g.score,
		Won:             g.Won(),
		CanAutoComplete: g.CanAutoComplete(),
	}
}

// BuildErrorMessage is BuildMessage with err attached
func (g *Game) BuildErrorMessage(cmd protocol.Cmd, gameID string, err error) protocol.OutboundMessage {
	msg := g.BuildMessage(cmd, gameID)
	msg.Error = err.Error()
	return msg
}

func (g *Game) BuildTableState() protocol.TableState {
	state := protocol.TableState{
		Stacks: make([]protocol.StackState, len(g.table.Stacks)),
	}
	for i, s := range g.table.Stacks {
		state.Stacks[i] = protocol.StackState{
			ID:    s.ID(),
			Cards: BuildCardStates(s.Cards()),
		}
	}
	return state
}

func BuildCardState(c *table.Card) protocol.CardState {
	if !c.IsUp() {
		return protocol.CardState{}
	}
	return protocol.CardState{Code: c.Code(), Up: true}
}

func BuildCardStates(cards []*table.Card) []protocol.CardState {
	states := make([]protocol.CardState, len(cards))
	for i, c := range cards {
		states[i] = BuildCardState(c)
	}
	return states
}

// BuildHintState returns nil when there is no hint
func BuildHintState(h *table.CardAndStack) *protocol.HintState {
	if h == nil {
		return nil
	}
	return &protocol.HintState{
		Stack: h.Card.Stack().ID(),
		Index: h.Card.Index(),
		Dest:  h.Stack.ID(),
	}
}
