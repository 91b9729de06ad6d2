package solitaire

import (
	"fmt"
	"io"
	"strings"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// DisplayText draws the table one stack per line, bottom card first.
// Face down cards show as "??".
func (g *Game) DisplayText() string {
	var b strings.Builder

	SendText(&b, "%s, score %d\n", g.rules.Name(), g.score)
	for _, s := range g.table.Stacks {
		codes := make([]string, 0, s.Size())
		for _, c := range s.Cards() {
			if c.IsUp() {
				codes = append(codes, c.Code())
			} else {
				codes = append(codes, "??")
			}
		}
		SendText(&b, "%2d: %s\n", s.ID(), strings.Join(codes, " "))
	}

	return b.String()
}
