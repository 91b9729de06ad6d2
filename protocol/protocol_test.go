package protocol

import (
	"encoding/json"
	"testing"

	utils "github.com/minaorangina/solitaire/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmd(t *testing.T) {
	for i := range cmdNames {
		cmd, err := ParseCmd(Cmd(i).String())
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cmd, Cmd(i))
	}

	_, err := ParseCmd("Reorg")
	utils.AssertErrored(t, err)

	assert.Equal(t, "Cmd(99)", Cmd(99).String())
}

func TestInboundMessageJSON(t *testing.T) {
	raw := []byte(`{"command": 3, "stack": 11, "index": 0, "dest": 6}`)

	var msg InboundMessage
	require.NoError(t, json.Unmarshal(raw, &msg))

	assert.Equal(t, InboundMessage{Command: Move, Stack: 11, Index: 0, Dest: 6}, msg)
}

func TestOutboundMessageOmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(OutboundMessage{Command: State, GameID: "g"})
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.NotContains(t, fields, "hint")
	assert.NotContains(t, fields, "error")
	assert.Contains(t, fields, "score")
}
