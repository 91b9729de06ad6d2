package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/solitaire/canfield"
	"github.com/minaorangina/solitaire/deck"
	"github.com/minaorangina/solitaire/prefs"
	"github.com/minaorangina/solitaire/protocol"
	"github.com/minaorangina/solitaire/store"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	DrawMode string `json:"draw_mode"`
}

// ServerOpts configures a GameServer. Only Store is required.
type ServerOpts struct {
	Store store.GameStore
	// Prefs holds the player's chosen draw mode across games
	Prefs    *prefs.Prefs
	Log      *logrus.Logger
	DrawMode canfield.DrawMode
	// Shuffle prepares the deck for every deal. Defaults to Deck.Shuffle.
	Shuffle func(d *deck.Deck)
}

// GameServer is a game server
type GameServer struct {
	store    store.GameStore
	prefs    *prefs.Prefs
	log      *logrus.Logger
	drawMode canfield.DrawMode
	shuffle  func(d *deck.Deck)

	accessLog *io.PipeWriter
	http.Server
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(opts ServerOpts) *GameServer {
	s := &GameServer{
		store:    opts.Store,
		prefs:    opts.Prefs,
		log:      opts.Log,
		drawMode: opts.DrawMode,
		shuffle:  opts.Shuffle,
	}
	if s.prefs == nil {
		s.prefs = prefs.New()
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	if !s.drawMode.Valid() {
		s.drawMode = canfield.DrawThree
	}
	if s.shuffle == nil {
		s.shuffle = func(d *deck.Deck) { d.Shuffle() }
	}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	s.accessLog = s.log.Writer()
	s.Handler = handlers.CombinedLoggingHandler(s.accessLog, cors(router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// Close stops the server and its access log
func (g *GameServer) Close() error {
	err := g.Server.Close()
	g.accessLog.Close()
	return err
}

// HandleNewGame creates and deals a game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil && !errors.Is(err, io.EOF) {
		g.log.WithError(err).Info("bad new game request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := g.chooseDrawMode(data.DrawMode); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := g.store.NewSession(g.newRules)
	if err != nil {
		g.log.WithError(err).Error("could not create session")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	msg, err := g.apply(session, protocol.InboundMessage{Command: protocol.Deal})
	if err != nil {
		g.log.WithError(err).WithField("game_id", session.ID()).Error("could not deal")
		writeMessage(w, http.StatusInternalServerError, msg)
		return
	}

	writeMessage(w, http.StatusCreated, msg)
}

// HandleGame serves GET /game/{id} and POST /game/{id}/command
func (g *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/game/"), "/")
	parts := strings.Split(path, "/")
	gameID := parts[0]
	if gameID == "" {
		http.Error(w, "missing game ID", http.StatusBadRequest)
		return
	}

	var in protocol.InboundMessage
	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		in.Command = protocol.State

	case len(parts) == 2 && parts[1] == "command" && r.Method == http.MethodPost:
		err := json.NewDecoder(r.Body).Decode(&in)
		defer r.Body.Close()
		if err != nil {
			g.log.WithError(err).WithField("game_id", gameID).Info("bad command")
			http.Error(w, "invalid command", http.StatusBadRequest)
			return
		}

	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}

	session, err := g.store.FindSession(gameID)
	if err != nil {
		http.Error(w, unknownGameIDMsg(gameID), http.StatusNotFound)
		return
	}

	msg, err := g.apply(session, in)
	writeMessage(w, statusFor(err), msg)
}

// HandleWS plays a game over a websocket: one reply per command received
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		http.Error(w, "missing game ID", http.StatusBadRequest)
		return
	}

	session, err := g.store.FindSession(gameID)
	if err != nil {
		http.Error(w, unknownGameIDMsg(gameID), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		g.log.WithError(err).WithField("game_id", gameID).Info("could not upgrade to websocket")
		return
	}
	defer conn.Close()

	log := g.log.WithField("game_id", gameID)
	log.Info("websocket connected")

	for {
		var in protocol.InboundMessage
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Info("websocket read failed")
			}
			return
		}

		msg, _ := g.apply(session, in)
		if err := conn.WriteJSON(msg); err != nil {
			log.WithError(err).Info("websocket write failed")
			return
		}
	}
}

func writeMessage(w http.ResponseWriter, status int, msg protocol.OutboundMessage) {
	bytes, err := json.Marshal(msg)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}
