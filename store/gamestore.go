package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/solitaire"
	"github.com/minaorangina/solitaire/table"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrNilRules      = errors.New("rules are nil")
)

// RulesFactory builds the rules for a new session, given its game ID
type RulesFactory func(gameID string) (solitaire.Rules, error)

type GameStore interface {
	NewSession(newRules RulesFactory) (*Session, error)
	FindSession(gameID string) (*Session, error)
	RemoveSession(gameID string) error
	Len() int
}

func NewID() string {
	return uuid.NewV4().String()
}

// Session is one game being played, identified by its game ID.
// Commands against the game are serialized through Do.
type Session struct {
	id    string
	mu    sync.Mutex
	game  *solitaire.Game
	flips []*table.Card
}

func newSession(id string, rules solitaire.Rules) (*Session, error) {
	s := &Session{id: id}
	game, err := solitaire.NewGame(rules, s)
	if err != nil {
		return nil, err
	}
	s.game = game
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

// Flip collects animated flips for the command in progress
func (s *Session) Flip(c *table.Card) {
	s.flips = append(s.flips, c)
}

// Flipped returns the cards turned face up so far by the current command.
// Only call it from inside Do.
func (s *Session) Flipped() []*table.Card {
	return s.flips
}

// Do runs fn with sole access to the game
func (s *Session) Do(fn func(g *solitaire.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flips = nil
	return fn(s.game)
}

// InMemoryGameStore maps game ID to session
type InMemoryGameStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	log      logrus.FieldLogger
}

// NewInMemoryGameStore constructs an InMemoryGameStore. The logger may be nil.
func NewInMemoryGameStore(log logrus.FieldLogger) *InMemoryGameStore {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &InMemoryGameStore{
		sessions: map[string]*Session{},
		log:      log,
	}
}

// NewSession creates and stores an undealt game under a fresh ID
func (s *InMemoryGameStore) NewSession(newRules RulesFactory) (*Session, error) {
	if newRules == nil {
		return nil, ErrNilRules
	}

	id := NewID()
	rules, err := newRules(id)
	if err != nil {
		return nil, fmt.Errorf("building rules: %w", err)
	}
	if rules == nil {
		return nil, ErrNilRules
	}

	session, err := newSession(id, rules)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"game_id": session.id,
		"rules":   rules.Name(),
	}).Info("session created")

	return session, nil
}

func (s *InMemoryGameStore) FindSession(gameID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGameID, gameID)
	}
	return session, nil
}

func (s *InMemoryGameStore) RemoveSession(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[gameID]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGameID, gameID)
	}
	delete(s.sessions, gameID)

	s.log.WithField("game_id", gameID).Info("session removed")
	return nil
}

func (s *InMemoryGameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
