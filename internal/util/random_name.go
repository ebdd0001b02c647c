package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Lucky", "Golden", "Velvet", "Royal", "Silver", "Midnight", "Neon", "Grand", "Hidden", "Roaring",
	"Smoky", "Electric", "Crimson", "Emerald", "Diamond", "High-Roller", "Dusty", "Gilded", "Shady", "Blazing",
}

var nouns = []string{
	"Table", "Parlor", "Lounge", "Den", "Saloon", "Casino", "Pit", "Room", "Club", "Hall",
	"Corner", "Palace", "Vault", "Deck", "Shoe",
}

// GetRandomName returns a random room name by combining an adjective with a noun
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	nounsIndex := random.Intn(len(nouns))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], nouns[nounsIndex])
}
