// Command cli plays seeded deals of Canfield without a player: it follows
// hints, auto-completes and taps the stock until a deal is won or stuck,
// then logs how every deal went.
package main

import (
	"github.com/minaorangina/solitaire"
	"github.com/minaorangina/solitaire/canfield"
	"github.com/minaorangina/solitaire/deck"
	"github.com/minaorangina/solitaire/internal/config"
	"github.com/minaorangina/solitaire/prefs"
	"github.com/minaorangina/solitaire/table"
	"github.com/sirupsen/logrus"
)

const (
	// a deal is stuck once this many stock taps pass without another move
	maxIdleTaps = 200
	// hints can shuffle piles between empty spaces forever
	maxSteps = 5000
)

type result struct {
	won   bool
	score int
	moves int
	table string
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.Fatal(err.Error())
	}
	log := cfg.Logger()

	won := 0
	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + int64(i)

		res, err := play(canfield.DrawMode(cfg.DrawMode), seed)
		if err != nil {
			log.WithError(err).WithField("seed", seed).Fatal("could not play")
		}
		if res.won {
			won++
		}

		log.WithFields(logrus.Fields{
			"seed":  seed,
			"won":   res.won,
			"score": res.score,
			"moves": res.moves,
		}).Info("deal finished")
		log.Debug("\n" + res.table)
	}

	log.WithFields(logrus.Fields{
		"games": cfg.Games,
		"won":   won,
	}).Info("done")
}

func play(mode canfield.DrawMode, seed int64) (result, error) {
	p := prefs.New()
	p.PutString(canfield.KeyDrawMode, string(mode))

	game, err := solitaire.NewGame(canfield.New(p), nil)
	if err != nil {
		return result{}, err
	}

	d := deck.New()
	d.ShuffleSeed(seed)
	if err := game.Deal(d); err != nil {
		return result{}, err
	}

	moves, idle := 0, 0
	for step := 0; step < maxSteps && !game.Won() && idle < maxIdleTaps; step++ {
		if hint := game.Hint(); hint != nil && !fromFoundation(hint) {
			if err := game.Move(hint.Card, hint.Stack); err == nil {
				moves++
				idle = 0
				continue
			}
		}

		n, err := game.AutoComplete()
		if err != nil {
			return result{}, err
		}
		if n > 0 {
			moves += n
			idle = 0
			continue
		}

		if err := game.TapStock(); err != nil {
			return result{}, err
		}
		idle++
	}

	return result{
		won:   game.Won(),
		score: game.Score(),
		moves: moves,
		table: game.DisplayText(),
	}, nil
}

// fromFoundation reports whether a hint takes a card back off a foundation
func fromFoundation(hint *table.CardAndStack) bool {
	id := hint.Card.Stack().ID()
	return id >= canfield.FirstFoundationID && id <= canfield.LastFoundationID
}
