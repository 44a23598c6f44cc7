package domain

import "fmt"

// Palette lists the color tokens available to puzzles, in the order
// they are assigned to tubes of the solved configuration.
const Palette = "RGBYPCMOWKLN"

// DefaultCapacity is the number of liquid units a tube holds.
const DefaultCapacity = 4

// Color is a single liquid unit, one byte from Palette.
type Color byte

// Tube holds colors bottom to top. Invariant: len <= capacity.
type Tube []Color

// Move pours the top contiguous run of Src into Dst.
type Move struct {
	Src int `json:"src"`
	Dst int `json:"dst"`
}

func (m Move) String() string { return fmt.Sprintf("%d->%d", m.Src, m.Dst) }

// State is an immutable snapshot of all tubes. Tube identity is the
// slice index. Transitions go through Apply, which always clones.
type State struct {
	Capacity int
	Tubes    []Tube
}

// Config describes a puzzle request.
type Config struct {
	Tubes         int
	Colors        int
	Capacity      int
	Seed          int64
	ScrambleLimit int
}

// withDefaults fills zero fields so callers can leave Capacity and
// ScrambleLimit unset.
func (c Config) withDefaults() Config {
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.ScrambleLimit == 0 {
		c.ScrambleLimit = 60
	}
	return c
}

// Validate checks the puzzle request bounds before any search work.
func (c Config) Validate() error {
	c = c.withDefaults()
	if c.Tubes < 5 || c.Tubes > 12 {
		return fmt.Errorf("%w: tubes must be in [5,12], got %d", ErrConfiguration, c.Tubes)
	}
	if c.Colors < 3 || c.Colors > c.Tubes-2 {
		return fmt.Errorf("%w: colors must be in [3,tubes-2], got %d", ErrConfiguration, c.Colors)
	}
	if c.Colors > len(Palette) {
		return fmt.Errorf("%w: colors exceed the %d-color palette", ErrConfiguration, len(Palette))
	}
	if c.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrConfiguration, c.Capacity)
	}
	if c.ScrambleLimit < 1 {
		return fmt.Errorf("%w: scramble limit must be positive, got %d", ErrConfiguration, c.ScrambleLimit)
	}
	return nil
}

// Normalized returns the config with defaults applied, validated.
func (c Config) Normalized() (Config, error) {
	c = c.withDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
