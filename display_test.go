package solitaire

import (
	"bytes"
	"strings"
	"testing"

	"github.com/minaorangina/solitaire/canfield"
	utils "github.com/minaorangina/solitaire/internal"
)

func TestSendText(t *testing.T) {
	t.Run("send simple text", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		want := "Hello"
		SendText(buffer, want)

		utils.AssertStringEquality(t, buffer.String(), want)
	})

	t.Run("send formatted text", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		want := "Hello, human"
		SendText(buffer, "Hello, %s", "human")

		utils.AssertStringEquality(t, buffer.String(), want)
	})
}

func TestDisplayText(t *testing.T) {
	g := newGame(t, canfield.DrawOne)
	lines := strings.Split(strings.TrimSpace(g.DisplayText()), "\n")

	utils.AssertEqual(t, len(lines), canfield.NumStacks+1)
	utils.AssertStringEquality(t, lines[0], "Canfield, score 0")
	utils.AssertStringEquality(t, lines[1], " 0: QS")
	utils.AssertTrue(t, strings.HasPrefix(lines[5], " 4: ?? ??"))
	utils.AssertTrue(t, strings.HasSuffix(lines[5], "?? 9H"))
	utils.AssertStringEquality(t, lines[12], "11: KS")
}
