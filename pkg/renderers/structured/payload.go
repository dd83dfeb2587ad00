package structured

import (
	"strconv"

	"github.com/goliatone/go-lncgen/pkg/model"
)

// Payload is the normalised, key-ordered shape of the structured document.
// Field order here is the serialisation order.
type Payload struct {
	Name         string       `json:"name" yaml:"name"`
	Author       string       `json:"author" yaml:"author"`
	Category     string       `json:"category" yaml:"category"`
	Difficulty   string       `json:"difficulty" yaml:"difficulty"`
	Description  string       `json:"description" yaml:"description"`
	Discord      string       `json:"discord" yaml:"discord"`
	Flag         string       `json:"flag" yaml:"flag"`
	Port         *int         `json:"port,omitempty" yaml:"port,omitempty"`
	Hints        []model.Hint `json:"hints,omitempty" yaml:"hints,omitempty"`
	Requirements []string     `json:"requirements,omitempty" yaml:"requirements,omitempty"`
}

// NewPayload normalises cfg: an empty port is dropped, a numeric port becomes
// an integer, and empty hint or requirement lists are dropped.
func NewPayload(cfg model.Config) Payload {
	p := Payload{
		Name:        cfg.Name,
		Author:      cfg.Author,
		Category:    string(cfg.Category),
		Difficulty:  string(cfg.Difficulty),
		Description: cfg.Description,
		Discord:     cfg.Discord,
		Flag:        cfg.Flag,
		Port:        normalisePort(cfg.Port),
	}
	if len(cfg.Hints) > 0 {
		p.Hints = append([]model.Hint(nil), cfg.Hints...)
	}
	if len(cfg.Requirements) > 0 {
		p.Requirements = append([]string(nil), cfg.Requirements...)
	}
	return p
}

// normalisePort returns nil for an empty or non-numeric port. Numeric values
// outside the valid range are still emitted; the model is not exportable in
// that state anyway.
func normalisePort(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
