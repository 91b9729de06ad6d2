package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/solitaire/canfield"
	"github.com/minaorangina/solitaire/deck"
	utils "github.com/minaorangina/solitaire/internal"
	"github.com/minaorangina/solitaire/protocol"
	"github.com/minaorangina/solitaire/store"
	"github.com/sirupsen/logrus/hooks/test"
)

// newTestGameServer deals unshuffled decks, so in deal-one mode the
// reserve shows 9H and the foundation 8H
func newTestGameServer(t *testing.T) *GameServer {
	t.Helper()

	logger, _ := test.NewNullLogger()
	s := NewServer(ServerOpts{
		Store:    store.NewInMemoryGameStore(logger),
		Log:      logger,
		DrawMode: canfield.DrawOne,
		Shuffle:  func(*deck.Deck) {},
	})
	t.Cleanup(func() { s.Close() })
	return s
}

// newTestServer starts and returns a new server.
// It is closed when the test finishes.
func newTestServer(t *testing.T) *httptest.Server {
	server := httptest.NewServer(newTestGameServer(t))
	t.Cleanup(server.Close)
	return server
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newCommandRequest(t *testing.T, gameID string, in protocol.InboundMessage) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/game/"+gameID+"/command", bytes.NewBuffer(mustMakeJson(t, in)))
	return request
}

// mustCreateGame creates a game and returns its opening message
func mustCreateGame(t *testing.T, server http.Handler, drawMode string) protocol.OutboundMessage {
	t.Helper()

	response := httptest.NewRecorder()
	server.ServeHTTP(response, newCreateGameRequest(mustMakeJson(t, NewGameReq{DrawMode: drawMode})))
	assertStatus(t, response.Code, http.StatusCreated)

	return mustReadMessage(t, response.Body)
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func mustReadMessage(t *testing.T, body io.Reader) protocol.OutboundMessage {
	t.Helper()
	bodyBytes, err := io.ReadAll(body)
	utils.AssertNoError(t, err)

	var got protocol.OutboundMessage
	err = json.Unmarshal(bodyBytes, &got)
	if err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	return got
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)

	if err != nil {
		var body []byte
		code := 0
		if resp != nil {
			body, _ = io.ReadAll(resp.Body)
			code = resp.StatusCode
		}
		t.Fatalf("could not open a ws connection on %s, code %d: %s, %v", url, code, body, err)
	}
	if ws == nil {
		t.Fatal("unexpected nil websocket conn")
	}
	t.Cleanup(func() { ws.Close() })

	return ws
}

func makeWSUrl(serverURL, gameID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
}
