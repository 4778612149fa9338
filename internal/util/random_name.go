package util

import (
	"fmt"

	"holdemtable-server/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Trotting", "Weaving", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Prime",
	"Growling", "Swimming", "Flying", "Jumping", "Running", "Charging", "Bouncing", "Leaping",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Shark", "Hippo", "Giraffe", "Lion", "Tiger", "Bear", "Otter", "Dolphin",
	"Porcupine", "Hedgehog", "Lizard", "Chipmunk", "Okapi", "Eagle", "Wolf", "Fox", "Armadillo", "Rhino", "Panda",
}

// RandomName returns a random name by combining an adjective with an animal
func RandomName(gen rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[gen.Intn(len(adjectives))], animals[gen.Intn(len(animals))])
}

// RandomNames returns n distinct random names
// n must be no larger than the number of possible names
func RandomNames(gen rng.Generator, n int) []string {
	names := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for len(names) < n {
		name := RandomName(gen)
		if seen[name] {
			continue
		}

		seen[name] = true
		names = append(names, name)
	}

	return names
}
