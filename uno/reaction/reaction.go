package reaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/unoparty/uno/card"
)

// Trigger is the kind of event a reaction is asked for.
type Trigger int

const (
	WildDrawFourPlayed Trigger = iota
	ChallengeWon
	ChallengeLost
	CaughtMissingDeclaration
	GameWon
	GameLost
)

type Request struct {
	Actor   string
	Persona string
	Trigger Trigger
	Event   string
	Card    *card.Card
}

// Generator produces a line of flavor text. Empty text means no reaction.
type Generator interface {
	Generate(ctx context.Context, request Request) (string, error)
}

// Port sends reaction requests without waiting for them. Failures never
// reach the caller: they are logged and dropped.
type Port struct {
	generator Generator
	timeout   time.Duration
}

func NewPort(generator Generator, timeout time.Duration) *Port {
	return &Port{generator: generator, timeout: timeout}
}

// Request asks for a reaction in the background and calls deliver with the
// text if one arrives in time. deliver runs on another goroutine.
func (p *Port) Request(request Request, deliver func(actor, text string)) {
	if p == nil || p.generator == nil {
		return
	}
	async.Async(func() {
		defer func() {
			if err := recover(); err != nil {
				log.Errorf("reaction for %s panicked: %v\n", request.Actor, err)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()

		text, err := p.generator.Generate(ctx, request)
		if err != nil {
			log.Infof("reaction for %s dropped: %v\n", request.Actor, err)
			return
		}
		text = strings.TrimSpace(text)
		if text == "" || ctx.Err() != nil {
			return
		}
		deliver(request.Actor, text)
	})
}

type nopGenerator struct{}

// Nop never reacts.
func Nop() Generator {
	return nopGenerator{}
}

func (nopGenerator) Generate(context.Context, Request) (string, error) {
	return "", nil
}

func describeCard(c *card.Card) string {
	if c == nil {
		return ""
	}
	if c.IsWild() && c.Declared.Real() {
		return fmt.Sprintf("%s %s", c.Declared.Name(), c.Value)
	}
	return fmt.Sprintf("%s %s", c.Color.Name(), c.Value)
}
