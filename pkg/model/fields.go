package model

import "fmt"

// FieldName identifies a scalar field of Config.
type FieldName string

const (
	FieldNameName        FieldName = "name"
	FieldNameAuthor      FieldName = "author"
	FieldNameCategory    FieldName = "category"
	FieldNameDifficulty  FieldName = "difficulty"
	FieldNameDescription FieldName = "description"
	FieldNameDiscord     FieldName = "discord"
	FieldNameFlag        FieldName = "flag"
	FieldNamePort        FieldName = "port"
)

// ListName identifies one of the ordered collections edited item by item.
type ListName string

const (
	ListHints ListName = "hints"
	ListFiles ListName = "files"
)

// InputKind hints how an input surface should collect a field.
type InputKind string

const (
	InputText     InputKind = "text"
	InputTextArea InputKind = "textarea"
	InputSelect   InputKind = "select"
)

// FormField describes one editable scalar field.
type FormField struct {
	Name        FieldName
	Label       string
	Placeholder string
	Kind        InputKind
	Options     []string
}

// FormFields lists the scalar fields in form order.
func FormFields() []FormField {
	return []FormField{
		{Name: FieldNameName, Label: "Challenge Name", Kind: InputText},
		{Name: FieldNameAuthor, Label: "Author", Kind: InputText},
		{Name: FieldNameCategory, Label: "Category", Kind: InputSelect, Options: categoryOptions()},
		{Name: FieldNameDifficulty, Label: "Difficulty", Kind: InputSelect, Options: difficultyOptions()},
		{Name: FieldNameDescription, Label: "Description", Kind: InputTextArea},
		{Name: FieldNameDiscord, Label: "Discord", Kind: InputText},
		{Name: FieldNameFlag, Label: "Flag", Placeholder: FlagPlaceholder, Kind: InputText},
		{Name: FieldNamePort, Label: "Port (optional)", Kind: InputText},
	}
}

// ParseFieldName resolves a raw field name.
func ParseFieldName(raw string) (FieldName, error) {
	for _, f := range FormFields() {
		if string(f.Name) == raw {
			return f.Name, nil
		}
	}
	return "", fmt.Errorf("model: unknown field %q", raw)
}

// Get returns the raw string value of a scalar field.
func (c Config) Get(name FieldName) (string, error) {
	switch name {
	case FieldNameName:
		return c.Name, nil
	case FieldNameAuthor:
		return c.Author, nil
	case FieldNameCategory:
		return string(c.Category), nil
	case FieldNameDifficulty:
		return string(c.Difficulty), nil
	case FieldNameDescription:
		return c.Description, nil
	case FieldNameDiscord:
		return c.Discord, nil
	case FieldNameFlag:
		return c.Flag, nil
	case FieldNamePort:
		return c.Port, nil
	default:
		return "", fmt.Errorf("model: unknown field %q", name)
	}
}

func categoryOptions() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

func difficultyOptions() []string {
	out := make([]string, len(difficulties))
	for i, d := range difficulties {
		out[i] = string(d)
	}
	return out
}
