package player

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/unoparty/uno/game"
)

// Persona is a bot's character, handed to the reaction generator.
type Persona struct {
	Name        string
	Description string
}

var Personas = []Persona{
	{
		Name:        "Flash",
		Description: "You are Flash, a competitive and slightly aggressive UNO player. You love winning and hate drawing cards. Answer briefly and forcefully.",
	},
	{
		Name:        "Luna",
		Description: "You are Luna, a laid-back and mysterious UNO player. You like talking about luck and fate. Answer briefly.",
	},
	{
		Name:        "Volt",
		Description: "You are Volt, a robotic, analytical UNO player. You calculate probabilities and speak technically. Answer briefly.",
	},
}

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
}

// CreatePlayers seats the human at seat 0 followed by the bots. The named
// personas are used first, larger tables get shuffled extra names.
func CreatePlayers(numberOfPlayers int, humanPlayerName string, rng *rand.Rand) []game.Identity {
	identities := make([]game.Identity, 0, numberOfPlayers)
	identities = append(identities, game.Identity{Name: humanPlayerName, Human: true})
	identities = append(identities, generateBots(numberOfPlayers-1, rng)...)
	return identities
}

func generateBots(amount int, rng *rand.Rand) []game.Identity {
	if amount <= 0 {
		return nil
	}
	bots := make([]game.Identity, 0, amount)
	for _, persona := range Personas {
		if len(bots) == amount {
			return bots
		}
		bots = append(bots, game.Identity{Name: persona.Name, Persona: persona.Description})
	}

	names := make([]string, len(botNames))
	copy(names, botNames)
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	for i := 0; len(bots) < amount; i++ {
		name := names[i%len(names)]
		if i >= len(names) {
			name = fmt.Sprintf("%s %d", name, i/len(names)+1)
		}
		bots = append(bots, game.Identity{
			Name:    name,
			Persona: fmt.Sprintf("You are %s, a casual UNO player. Answer briefly.", name),
		})
	}
	return bots
}
