package reaction

import (
	"context"
	"math/rand"
	"sync"
)

var cannedLines = map[Trigger][]string{
	WildDrawFourPlayed: {
		"Four cards? You will regret that.",
		"Bold move. The cards remember.",
		"Probability of revenge: rising.",
	},
	ChallengeWon: {
		"Caught you red-handed!",
		"Fate does not like cheaters.",
		"Analysis confirmed. Penalty applied.",
	},
	ChallengeLost: {
		"Ugh, I hate drawing cards.",
		"The stars misled me this time.",
		"Error in estimate. Recalculating.",
	},
	CaughtMissingDeclaration: {
		"You forgot to call it!",
		"Silence has a price.",
		"Protocol violation detected.",
	},
	GameWon: {
		"Nobody beats me!",
		"It was written in the stars.",
		"Outcome matches prediction.",
	},
	GameLost: {
		"Next round is mine.",
		"Luck turns, always.",
		"Sample size too small. Rematch.",
	},
}

// CannedGenerator picks prewritten lines, so tables without an API key
// still get some chatter.
type CannedGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewCannedGenerator(rng *rand.Rand) *CannedGenerator {
	return &CannedGenerator{rng: rng}
}

func (g *CannedGenerator) Generate(_ context.Context, request Request) (string, error) {
	lines := cannedLines[request.Trigger]
	if len(lines) == 0 {
		return "", nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return lines[g.rng.Intn(len(lines))], nil
}
