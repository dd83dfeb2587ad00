package form

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/goliatone/go-lncgen/pkg/model"
)

// HintDraft holds the transient hint inputs. Cost stays a string so invalid
// input can be shown back to the user unchanged.
type HintDraft struct {
	Description string
	Cost        string
}

// Manager owns the canonical challenge model for one editing session.
type Manager struct {
	config model.Config
	files  []string

	hintCursor Cursor
	hintDraft  HintDraft
	hintError  string

	fileCursor Cursor
	fileDraft  string

	flagValid bool
	portError string
	enumErrs  []model.FieldValidationError

	logger *zap.Logger
}

// New returns a Manager seeded with the session defaults.
func New(options ...Option) *Manager {
	m := &Manager{
		config: model.NewConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	if m.config.Category == "" {
		m.config.Category = model.DefaultCategory
	}
	if m.config.Difficulty == "" {
		m.config.Difficulty = model.DefaultDifficulty
	}
	m.revalidate()
	return m
}

// SetField updates a scalar field. Flag and port changes never fail; they
// update the inline validity state instead. Category and difficulty values
// outside their closed sets are rejected and leave the model unchanged.
func (m *Manager) SetField(name model.FieldName, value string) error {
	switch name {
	case model.FieldNameName:
		m.config.Name = value
	case model.FieldNameAuthor:
		m.config.Author = value
	case model.FieldNameDescription:
		m.config.Description = value
	case model.FieldNameDiscord:
		m.config.Discord = value
	case model.FieldNameCategory:
		category, err := model.ParseCategory(value)
		if err != nil {
			return model.FieldValidationError{Field: name, Value: value, Message: model.CategoryErrorMessage}
		}
		m.config.Category = category
	case model.FieldNameDifficulty:
		difficulty, err := model.ParseDifficulty(value)
		if err != nil {
			return model.FieldValidationError{Field: name, Value: value, Message: model.DifficultyErrorMessage}
		}
		m.config.Difficulty = difficulty
	case model.FieldNameFlag:
		m.config.Flag = value
	case model.FieldNamePort:
		m.config.Port = value
	default:
		return fmt.Errorf("form: unknown field %q", name)
	}
	m.revalidate()
	m.logger.Debug("field updated", zap.String("field", string(name)))
	return nil
}

// SetRequirements replaces the pass-through requirements list.
func (m *Manager) SetRequirements(requirements []string) {
	m.config.Requirements = append([]string(nil), requirements...)
}

// SetHintDraft stages hint inputs without touching the list.
func (m *Manager) SetHintDraft(description, cost string) {
	m.hintDraft = HintDraft{Description: description, Cost: cost}
}

// AddOrUpdateHint validates the inputs and either replaces the hint under
// edit or appends a new one. On failure the list is unchanged, the inputs stay
// staged, and an ItemValidationError is returned.
func (m *Manager) AddOrUpdateHint(description, cost string) error {
	m.hintDraft = HintDraft{Description: description, Cost: cost}

	parsed, ok := model.ParseHintCost(cost)
	if description == "" || !ok {
		m.hintError = model.HintErrorMessage
		return model.ItemValidationError{List: model.ListHints, Message: model.HintErrorMessage}
	}

	hint := model.Hint{Description: description, Cost: parsed}
	if idx, editing := m.hintCursor.Index(); editing {
		if idx < 0 || idx >= len(m.config.Hints) {
			return model.IndexError{List: model.ListHints, Index: idx, Len: len(m.config.Hints)}
		}
		hints := append([]model.Hint(nil), m.config.Hints...)
		hints[idx] = hint
		m.config.Hints = hints
		m.hintCursor = Idle()
		m.logger.Debug("hint replaced", zap.Int("index", idx))
	} else {
		m.config.Hints = append(m.config.Hints, hint)
		m.logger.Debug("hint appended", zap.Int("index", len(m.config.Hints)-1))
	}

	m.hintError = ""
	m.hintDraft = HintDraft{}
	return nil
}

// EditHint stages the hint at index for editing.
func (m *Manager) EditHint(index int) error {
	if err := checkIndex(model.ListHints, index, len(m.config.Hints)); err != nil {
		return err
	}
	hint := m.config.Hints[index]
	m.hintDraft = HintDraft{Description: hint.Description, Cost: strconv.Itoa(hint.Cost)}
	m.hintCursor = EditingAt(index)
	return nil
}

// DeleteHint removes the hint at index.
func (m *Manager) DeleteHint(index int) error {
	if err := checkIndex(model.ListHints, index, len(m.config.Hints)); err != nil {
		return err
	}
	m.config.Hints = removeAt(m.config.Hints, index)
	m.hintCursor = m.hintCursor.afterDelete(index)
	m.logger.Debug("hint deleted", zap.Int("index", index))
	return nil
}

// CancelHintEdit drops the staged hint and returns the cursor to Idle.
func (m *Manager) CancelHintEdit() {
	m.hintCursor = Idle()
	m.hintDraft = HintDraft{}
	m.hintError = ""
}

// SetFileDraft stages a filename without touching the list.
func (m *Manager) SetFileDraft(filename string) {
	m.fileDraft = filename
}

// AddOrUpdateFile replaces the file under edit or appends filename. An empty
// filename is ignored.
func (m *Manager) AddOrUpdateFile(filename string) error {
	if filename == "" {
		return nil
	}
	m.fileDraft = filename

	if idx, editing := m.fileCursor.Index(); editing {
		if idx < 0 || idx >= len(m.files) {
			return model.IndexError{List: model.ListFiles, Index: idx, Len: len(m.files)}
		}
		files := append([]string(nil), m.files...)
		files[idx] = filename
		m.files = files
		m.fileCursor = Idle()
		m.logger.Debug("file replaced", zap.Int("index", idx))
	} else {
		m.files = append(m.files, filename)
		m.logger.Debug("file appended", zap.Int("index", len(m.files)-1))
	}

	m.fileDraft = ""
	return nil
}

// EditFile stages the file at index for editing.
func (m *Manager) EditFile(index int) error {
	if err := checkIndex(model.ListFiles, index, len(m.files)); err != nil {
		return err
	}
	m.fileDraft = m.files[index]
	m.fileCursor = EditingAt(index)
	return nil
}

// DeleteFile removes the file at index.
func (m *Manager) DeleteFile(index int) error {
	if err := checkIndex(model.ListFiles, index, len(m.files)); err != nil {
		return err
	}
	m.files = removeAt(m.files, index)
	m.fileCursor = m.fileCursor.afterDelete(index)
	m.logger.Debug("file deleted", zap.Int("index", index))
	return nil
}

// CancelFileEdit drops the staged filename and returns the cursor to Idle.
func (m *Manager) CancelFileEdit() {
	m.fileCursor = Idle()
	m.fileDraft = ""
}

// Config returns a copy of the current configuration.
func (m *Manager) Config() model.Config {
	return m.config.Clone()
}

// Hints returns a copy of the hint list.
func (m *Manager) Hints() []model.Hint {
	return append([]model.Hint(nil), m.config.Hints...)
}

// Files returns a copy of the file list.
func (m *Manager) Files() []string {
	return append([]string(nil), m.files...)
}

func (m *Manager) HintCursor() Cursor   { return m.hintCursor }
func (m *Manager) HintDraft() HintDraft { return m.hintDraft }
func (m *Manager) HintError() string    { return m.hintError }
func (m *Manager) FileCursor() Cursor   { return m.fileCursor }
func (m *Manager) FileDraft() string    { return m.fileDraft }

// FlagValid reports whether the current flag matches LNC25{...}.
func (m *Manager) FlagValid() bool {
	return m.flagValid
}

// PortError returns the inline port error, empty when the port is acceptable.
func (m *Manager) PortError() string {
	return m.portError
}

// Valid reports whether copy and export are permitted.
func (m *Manager) Valid() bool {
	return m.flagValid && m.portError == "" && len(m.enumErrs) == 0
}

// FieldErrors lists the field problems currently blocking export, in form
// order. Category and difficulty can only be out of their sets when seeded
// through WithConfig.
func (m *Manager) FieldErrors() []model.FieldValidationError {
	out := append([]model.FieldValidationError(nil), m.enumErrs...)
	if !m.flagValid {
		out = append(out, model.FieldValidationError{
			Field:   model.FieldNameFlag,
			Value:   m.config.Flag,
			Message: model.FlagErrorMessage,
		})
	}
	if m.portError != "" {
		out = append(out, model.FieldValidationError{
			Field:   model.FieldNamePort,
			Value:   m.config.Port,
			Message: m.portError,
		})
	}
	return out
}

// Err joins FieldErrors into a single error, or returns nil when valid.
func (m *Manager) Err() error {
	fieldErrs := m.FieldErrors()
	if len(fieldErrs) == 0 {
		return nil
	}
	errs := make([]error, len(fieldErrs))
	for i, e := range fieldErrs {
		errs[i] = e
	}
	return errors.Join(errs...)
}

func (m *Manager) revalidate() {
	m.flagValid = model.ValidFlag(m.config.Flag)
	m.portError = model.PortError(m.config.Port)

	m.enumErrs = m.enumErrs[:0]
	if _, err := model.ParseCategory(string(m.config.Category)); err != nil {
		m.enumErrs = append(m.enumErrs, model.FieldValidationError{
			Field:   model.FieldNameCategory,
			Value:   string(m.config.Category),
			Message: model.CategoryErrorMessage,
		})
	}
	if _, err := model.ParseDifficulty(string(m.config.Difficulty)); err != nil {
		m.enumErrs = append(m.enumErrs, model.FieldValidationError{
			Field:   model.FieldNameDifficulty,
			Value:   string(m.config.Difficulty),
			Message: model.DifficultyErrorMessage,
		})
	}
}

func checkIndex(list model.ListName, index, length int) error {
	if index < 0 || index >= length {
		return model.IndexError{List: list, Index: index, Len: length}
	}
	return nil
}

func removeAt[T any](items []T, index int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}
