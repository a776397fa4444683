package dice

import (
	"math/rand"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/pig/internal/dice Roller

const (
	// DefaultSides is a standard six-sided die
	DefaultSides = 6

	// DefaultSeed makes every game replay the same roll sequence
	DefaultSeed int64 = 0
)

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll() int
}

// Config for a die
type Config struct {
	// Seed for the pseudo-random source, ignored when Source is set
	Seed int64

	// Sides on the die, defaults to 6
	Sides int

	// Optional source override for testing
	Source rand.Source
}

// Die is a seeded die that remembers its last roll
type Die struct {
	random     *rand.Rand
	sides      int
	lastRolled int
}

// New creates a new die. A nil config yields a six-sided die seeded with DefaultSeed
func New(cfg *Config) *Die {
	if cfg == nil {
		cfg = &Config{Seed: DefaultSeed}
	}

	sides := cfg.Sides
	if sides < 1 {
		sides = DefaultSides
	}

	source := cfg.Source
	if source == nil {
		source = rand.NewSource(cfg.Seed)
	}

	return &Die{
		random: rand.New(source),
		sides:  sides,
	}
}

// Roll throws the die and remembers the result
func (d *Die) Roll() int {
	d.lastRolled = d.random.Intn(d.sides) + 1
	return d.lastRolled
}

// LastRolled returns the most recent roll, or 0 before the first roll
func (d *Die) LastRolled() int {
	return d.lastRolled
}
