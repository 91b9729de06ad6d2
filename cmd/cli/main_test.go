package main

import (
	"testing"

	"github.com/minaorangina/solitaire/canfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	for _, mode := range []canfield.DrawMode{canfield.DrawOne, canfield.DrawThree} {
		t.Run(string(mode), func(t *testing.T) {
			first, err := play(mode, 7)
			require.NoError(t, err)

			again, err := play(mode, 7)
			require.NoError(t, err)
			assert.Equal(t, first, again, "a seed replays the same deal")
		})
	}
}
