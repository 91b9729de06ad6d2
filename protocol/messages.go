package protocol

// InboundMessage is a command sent by a client.
// Stack and Index locate the card to act on; Dest is the destination
// stack of a Move. DrawMode optionally changes the draw mode for a Deal.
type InboundMessage struct {
	Command  Cmd    `json:"command"`
	Stack    int    `json:"stack"`
	Index    int    `json:"index"`
	Dest     int    `json:"dest"`
	DrawMode string `json:"drawMode,omitempty"`
}

// OutboundMessage is the reply to an InboundMessage
type OutboundMessage struct {
	Command  Cmd        `json:"command"`
	GameID   string     `json:"gameID"`
	Table    TableState `json:"table"`
	Score    int        `json:"score"`
	Won      bool       `json:"won"`
	DrawMode string     `json:"drawMode"`

	// CanAutoComplete is whether the rules suggest offering auto-complete.
	// The command is accepted either way.
	CanAutoComplete bool        `json:"canAutoComplete"`
	Hint            *HintState  `json:"hint,omitempty"`
	Flips           []CardState `json:"flips,omitempty"`
	Moves           int         `json:"moves,omitempty"`
	Error           string      `json:"error,omitempty"`
}

// CardState is a card as shown to the client. Face down cards have no code.
type CardState struct {
	Code string `json:"code,omitempty"`
	Up   bool   `json:"up"`
}

// StackState is one stack, bottom card first
type StackState struct {
	ID    int         `json:"id"`
	Cards []CardState `json:"cards"`
}

// TableState holds every stack in ID order
type TableState struct {
	Stacks []StackState `json:"stacks"`
}

// HintState suggests moving the card at Index of Stack onto Dest
type HintState struct {
	Stack int `json:"stack"`
	Index int `json:"index"`
	Dest  int `json:"dest"`
}
