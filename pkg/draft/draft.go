package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-lncgen/pkg/form"
	"github.com/goliatone/go-lncgen/pkg/model"
)

// Scalar holds a value that may be written either as a string or a number,
// such as a port or a hint cost.
type Scalar string

// UnmarshalJSON accepts JSON strings and numbers.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("draft: expected string or number, got %s", trimmed)
	}
	*s = Scalar(num.String())
	return nil
}

// UnmarshalYAML accepts any scalar node.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("draft: line %d: expected a scalar value", node.Line)
	}
	if node.Tag == "!!null" {
		*s = ""
		return nil
	}
	*s = Scalar(node.Value)
	return nil
}

// Hint is a hint entry as written in a draft file.
type Hint struct {
	Description string `json:"description" yaml:"description"`
	Cost        Scalar `json:"cost" yaml:"cost"`
}

// Draft mirrors the editable state of a challenge.
type Draft struct {
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	Author       string   `json:"author,omitempty" yaml:"author,omitempty"`
	Category     string   `json:"category,omitempty" yaml:"category,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Discord      string   `json:"discord,omitempty" yaml:"discord,omitempty"`
	Flag         string   `json:"flag,omitempty" yaml:"flag,omitempty"`
	Port         Scalar   `json:"port,omitempty" yaml:"port,omitempty"`
	Hints        []Hint   `json:"hints,omitempty" yaml:"hints,omitempty"`
	Files        []string `json:"files,omitempty" yaml:"files,omitempty"`
	Requirements []string `json:"requirements,omitempty" yaml:"requirements,omitempty"`
}

// FromConfig captures a model and its file list as a draft.
func FromConfig(cfg model.Config, files []string) Draft {
	d := Draft{
		Name:         cfg.Name,
		Author:       cfg.Author,
		Category:     string(cfg.Category),
		Difficulty:   string(cfg.Difficulty),
		Description:  cfg.Description,
		Discord:      cfg.Discord,
		Flag:         cfg.Flag,
		Port:         Scalar(cfg.Port),
		Files:        append([]string(nil), files...),
		Requirements: append([]string(nil), cfg.Requirements...),
	}
	for _, h := range cfg.Hints {
		d.Hints = append(d.Hints, Hint{Description: h.Description, Cost: Scalar(strconv.Itoa(h.Cost))})
	}
	return d
}

// Load reads and parses the draft at path.
func Load(path string) (Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Draft{}, fmt.Errorf("draft: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes JSON or YAML draft content. source names the input in errors.
// YAML is only tried when the content is not JSON at all; a well-formed JSON
// document with bad values fails with the JSON error.
func Parse(data []byte, source string) (Draft, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Draft{}, fmt.Errorf("draft: file %s is empty", source)
	}

	var d Draft
	err := json.Unmarshal(data, &d)
	if err == nil {
		return d, nil
	}
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return Draft{}, fmt.Errorf("draft: parse %s: %w", source, err)
	}

	d = Draft{}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Draft{}, fmt.Errorf("draft: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return d, nil
}

// Encode writes the draft as YAML.
func Encode(w io.Writer, d Draft) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("draft: encode: %w", err)
	}
	return enc.Close()
}

// Apply replays the draft onto m through the regular editing operations.
// Empty scalar values keep whatever m already holds.
func (d Draft) Apply(m *form.Manager) error {
	fields := []struct {
		name  model.FieldName
		value string
	}{
		{model.FieldNameName, d.Name},
		{model.FieldNameAuthor, d.Author},
		{model.FieldNameCategory, d.Category},
		{model.FieldNameDifficulty, d.Difficulty},
		{model.FieldNameDescription, d.Description},
		{model.FieldNameDiscord, d.Discord},
		{model.FieldNameFlag, d.Flag},
		{model.FieldNamePort, string(d.Port)},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := m.SetField(f.name, f.value); err != nil {
			return fmt.Errorf("draft: %w", err)
		}
	}

	for idx, h := range d.Hints {
		if err := m.AddOrUpdateHint(h.Description, string(h.Cost)); err != nil {
			return fmt.Errorf("draft: hint %d: %w", idx, err)
		}
	}
	for _, name := range d.Files {
		if err := m.AddOrUpdateFile(name); err != nil {
			return fmt.Errorf("draft: file %q: %w", name, err)
		}
	}
	if len(d.Requirements) > 0 {
		m.SetRequirements(d.Requirements)
	}
	return nil
}
