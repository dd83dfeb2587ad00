package model

import "fmt"

// Category classifies a challenge. The set is closed.
type Category string

const (
	CategoryCrypto    Category = "crypto"
	CategoryForensics Category = "forensics"
	CategoryMisc      Category = "misc"
	CategoryOSINT     Category = "osint"
	CategoryPwn       Category = "pwn"
	CategoryRE        Category = "re"
	CategoryWeb       Category = "web"
)

// Difficulty ranks a challenge. The set is closed.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyInsane Difficulty = "insane"
)

const (
	DefaultCategory   = CategoryMisc
	DefaultDifficulty = DifficultyEasy
)

var categories = []Category{
	CategoryCrypto,
	CategoryForensics,
	CategoryMisc,
	CategoryOSINT,
	CategoryPwn,
	CategoryRE,
	CategoryWeb,
}

var difficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyInsane,
}

// Categories returns the allowed categories in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Difficulties returns the allowed difficulties in ascending order.
func Difficulties() []Difficulty {
	return append([]Difficulty(nil), difficulties...)
}

// ParseCategory resolves a raw value into a Category.
func ParseCategory(raw string) (Category, error) {
	for _, c := range categories {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", fmt.Errorf("model: unknown category %q", raw)
}

// ParseDifficulty resolves a raw value into a Difficulty.
func ParseDifficulty(raw string) (Difficulty, error) {
	for _, d := range difficulties {
		if string(d) == raw {
			return d, nil
		}
	}
	return "", fmt.Errorf("model: unknown difficulty %q", raw)
}

// Hint is a purchasable clue. Cost is deducted from the solver's score.
type Hint struct {
	Description string `json:"description" yaml:"description"`
	Cost        int    `json:"cost" yaml:"cost"`
}

// Config is the in-memory representation of a single challenge. Port is kept
// as the raw user input; renderers normalise it.
type Config struct {
	Name         string
	Author       string
	Category     Category
	Difficulty   Difficulty
	Description  string
	Discord      string
	Flag         string
	Port         string
	Hints        []Hint
	Requirements []string
}

// NewConfig returns a Config populated with session defaults.
func NewConfig() Config {
	return Config{
		Category:   DefaultCategory,
		Difficulty: DefaultDifficulty,
	}
}

// Clone returns a deep copy so callers can hand the value out without sharing
// the underlying slices.
func (c Config) Clone() Config {
	out := c
	if c.Hints != nil {
		out.Hints = append([]Hint(nil), c.Hints...)
	}
	if c.Requirements != nil {
		out.Requirements = append([]string(nil), c.Requirements...)
	}
	return out
}
