package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-lncgen/pkg/export"
	"github.com/goliatone/go-lncgen/pkg/form"
	"github.com/goliatone/go-lncgen/pkg/model"
	"github.com/goliatone/go-lncgen/pkg/orchestrator"
)

// Main menu entries.
const (
	MenuEditField = "Edit a field"
	MenuHints     = "Manage hints"
	MenuFiles     = "Manage files"
	MenuPreview   = "Preview a document"
	MenuCopy      = "Copy a document to the clipboard"
	MenuDownload  = "Download a document"
	MenuQuit      = "Quit"
)

// List menu entries.
const (
	ItemAdd    = "Add"
	ItemEdit   = "Edit"
	ItemDelete = "Delete"
	ItemBack   = "Back"
)

const invalidModelMessage = "Please fix the highlighted errors before copying or downloading."

var mainMenu = []string{MenuEditField, MenuHints, MenuFiles, MenuPreview, MenuCopy, MenuDownload, MenuQuit}

// Session is one interactive editing run. It is not safe for concurrent use.
type Session struct {
	orch        *orchestrator.Orchestrator
	exporter    *export.Exporter
	driver      PromptDriver
	theme       Theme
	preview     Previewer
	downloadDir string
	logger      *zap.Logger
}

// NewSession wires a session around orch.
func NewSession(orch *orchestrator.Orchestrator, options ...Option) (*Session, error) {
	if orch == nil {
		return nil, errors.New("tui: orchestrator is required")
	}
	s := &Session{
		orch:        orch,
		theme:       DefaultTheme(),
		preview:     MarkdownPreviewer(80),
		downloadDir: ".",
		logger:      zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	if s.exporter == nil {
		s.exporter = export.New(orch, export.WithLogger(s.logger))
	}
	return s, nil
}

// Run loops over the main menu until the user quits. ErrAborted is returned
// when the user interrupts a prompt.
func (s *Session) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	for {
		if err := s.status(ctx); err != nil {
			return err
		}
		choice, err := s.driver.Select(ctx, SelectConfig{Message: "What next?", Options: mainMenu})
		if err != nil {
			return err
		}
		if choice < 0 || choice >= len(mainMenu) {
			continue
		}

		switch mainMenu[choice] {
		case MenuEditField:
			err = s.editField(ctx)
		case MenuHints:
			err = s.manageHints(ctx)
		case MenuFiles:
			err = s.manageFiles(ctx)
		case MenuPreview:
			err = s.previewDocument(ctx)
		case MenuCopy:
			err = s.copyDocument(ctx)
		case MenuDownload:
			err = s.downloadDocument(ctx)
		case MenuQuit:
			s.logger.Debug("session finished")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) manager() *form.Manager {
	return s.orch.Manager()
}

func (s *Session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.Info.Render(msg))
}

func (s *Session) fail(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.Error.Render(msg))
}

func (s *Session) status(ctx context.Context) error {
	m := s.manager()
	name := m.Config().Name
	if name == "" {
		name = "untitled challenge"
	}
	if err := s.driver.Info(ctx, s.theme.Heading.Render(name)); err != nil {
		return err
	}
	if m.Valid() {
		return s.driver.Info(ctx, s.theme.Muted.Render("ready to export"))
	}
	for _, fe := range m.FieldErrors() {
		if err := s.fail(ctx, fmt.Sprintf("%s: %s", fe.Field, fe.Message)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) editField(ctx context.Context) error {
	m := s.manager()
	cfg := m.Config()
	fields := model.FormFields()

	labels := make([]string, len(fields))
	for i, f := range fields {
		current, _ := cfg.Get(f.Name)
		labels[i] = fmt.Sprintf("%s: %s", f.Label, summarise(current))
	}
	choice, err := s.driver.Select(ctx, SelectConfig{Message: "Field", Options: labels})
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(fields) {
		return nil
	}

	field := fields[choice]
	current, _ := cfg.Get(field.Name)
	value, err := s.promptValue(ctx, field, current)
	if err != nil {
		return err
	}
	if err := m.SetField(field.Name, value); err != nil {
		return s.fail(ctx, err.Error())
	}

	switch field.Name {
	case model.FieldNameFlag:
		if !m.FlagValid() {
			return s.fail(ctx, model.FlagErrorMessage)
		}
	case model.FieldNamePort:
		if msg := m.PortError(); msg != "" {
			return s.fail(ctx, msg)
		}
	}
	return nil
}

func (s *Session) promptValue(ctx context.Context, field model.FormField, current string) (string, error) {
	switch field.Kind {
	case model.InputSelect:
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      field.Label,
			Options:      field.Options,
			DefaultIndex: indexOf(field.Options, current),
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(field.Options) {
			return current, nil
		}
		return field.Options[idx], nil
	case model.InputTextArea:
		return s.driver.TextArea(ctx, TextAreaConfig{Message: field.Label, Default: current})
	default:
		return s.driver.Input(ctx, InputConfig{Message: field.Label, Default: current, Help: field.Placeholder})
	}
}

func (s *Session) manageHints(ctx context.Context) error {
	m := s.manager()
	for {
		hints := m.Hints()
		options := make([]string, 0, len(hints)+2)
		for _, h := range hints {
			options = append(options, fmt.Sprintf("%s (%d pts)", summarise(h.Description), h.Cost))
		}
		options = append(options, ItemAdd, ItemBack)

		choice, err := s.driver.Select(ctx, SelectConfig{Message: "Hints", Options: options})
		if err != nil {
			return err
		}
		switch {
		case choice == len(hints):
			m.CancelHintEdit()
			if err := s.promptHint(ctx); err != nil {
				return err
			}
		case choice >= 0 && choice < len(hints):
			action, err := s.itemAction(ctx, options[choice])
			if err != nil {
				return err
			}
			switch action {
			case ItemEdit:
				if err := m.EditHint(choice); err != nil {
					return s.fail(ctx, err.Error())
				}
				if err := s.promptHint(ctx); err != nil {
					return err
				}
			case ItemDelete:
				if err := m.DeleteHint(choice); err != nil {
					return s.fail(ctx, err.Error())
				}
				if err := s.info(ctx, "hint removed"); err != nil {
					return err
				}
			}
		default:
			return nil
		}
	}
}

// promptHint collects the staged hint inputs until they are accepted or the
// user gives up, in which case the edit is cancelled.
func (s *Session) promptHint(ctx context.Context) error {
	m := s.manager()
	for {
		draft := m.HintDraft()
		description, err := s.driver.Input(ctx, InputConfig{Message: "Hint", Default: draft.Description})
		if err != nil {
			return err
		}
		cost, err := s.driver.Input(ctx, InputConfig{Message: "Cost (pts)", Default: draft.Cost})
		if err != nil {
			return err
		}

		err = m.AddOrUpdateHint(description, cost)
		if err == nil {
			return nil
		}
		var itemErr model.ItemValidationError
		if !errors.As(err, &itemErr) {
			m.CancelHintEdit()
			return s.fail(ctx, err.Error())
		}
		if err := s.fail(ctx, m.HintError()); err != nil {
			return err
		}
		retry, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Try again?", Default: true})
		if err != nil {
			return err
		}
		if !retry {
			m.CancelHintEdit()
			return nil
		}
	}
}

func (s *Session) manageFiles(ctx context.Context) error {
	m := s.manager()
	for {
		files := m.Files()
		options := make([]string, 0, len(files)+2)
		options = append(options, files...)
		options = append(options, ItemAdd, ItemBack)

		choice, err := s.driver.Select(ctx, SelectConfig{Message: "Files", Options: options})
		if err != nil {
			return err
		}
		switch {
		case choice == len(files):
			m.CancelFileEdit()
			if err := s.promptFile(ctx); err != nil {
				return err
			}
		case choice >= 0 && choice < len(files):
			action, err := s.itemAction(ctx, files[choice])
			if err != nil {
				return err
			}
			switch action {
			case ItemEdit:
				if err := m.EditFile(choice); err != nil {
					return s.fail(ctx, err.Error())
				}
				if err := s.promptFile(ctx); err != nil {
					return err
				}
			case ItemDelete:
				if err := m.DeleteFile(choice); err != nil {
					return s.fail(ctx, err.Error())
				}
				if err := s.info(ctx, "file removed"); err != nil {
					return err
				}
			}
		default:
			return nil
		}
	}
}

func (s *Session) promptFile(ctx context.Context) error {
	m := s.manager()
	name, err := s.driver.Input(ctx, InputConfig{Message: "Filename", Default: m.FileDraft()})
	if err != nil {
		return err
	}
	if name == "" {
		m.CancelFileEdit()
		return nil
	}
	if err := m.AddOrUpdateFile(name); err != nil {
		m.CancelFileEdit()
		return s.fail(ctx, err.Error())
	}
	return nil
}

func (s *Session) itemAction(ctx context.Context, label string) (string, error) {
	actions := []string{ItemEdit, ItemDelete, ItemBack}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: label, Options: actions})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(actions) {
		return ItemBack, nil
	}
	return actions[idx], nil
}

func (s *Session) chooseKind(ctx context.Context, message string) (string, bool, error) {
	kinds := s.orch.Kinds()
	idx, err := s.driver.Select(ctx, SelectConfig{Message: message, Options: kinds})
	if err != nil {
		return "", false, err
	}
	if idx < 0 || idx >= len(kinds) {
		return "", false, nil
	}
	return kinds[idx], true, nil
}

func (s *Session) previewDocument(ctx context.Context) error {
	kind, ok, err := s.chooseKind(ctx, "Preview")
	if err != nil || !ok {
		return err
	}
	text, err := s.exporter.Text(ctx, kind)
	if err != nil {
		return s.fail(ctx, err.Error())
	}
	out, err := s.preview(kind, text)
	if err != nil {
		return s.fail(ctx, err.Error())
	}
	return s.driver.Info(ctx, out)
}

func (s *Session) copyDocument(ctx context.Context) error {
	kind, ok, err := s.chooseKind(ctx, "Copy")
	if err != nil || !ok {
		return err
	}
	art, err := s.exporter.Copy(ctx, kind)
	if err != nil {
		return s.exportFailed(ctx, err)
	}
	return s.info(ctx, fmt.Sprintf("%s copied to clipboard", art.FileName))
}

func (s *Session) downloadDocument(ctx context.Context) error {
	kind, ok, err := s.chooseKind(ctx, "Download")
	if err != nil || !ok {
		return err
	}
	path, err := s.exporter.Download(ctx, kind, s.downloadDir)
	if err != nil {
		return s.exportFailed(ctx, err)
	}
	return s.info(ctx, "saved "+path)
}

func (s *Session) exportFailed(ctx context.Context, err error) error {
	if errors.Is(err, export.ErrInvalidModel) {
		return s.fail(ctx, invalidModelMessage)
	}
	s.logger.Warn("export failed", zap.Error(err))
	return s.fail(ctx, err.Error())
}

func summarise(value string) string {
	line, _, _ := strings.Cut(value, "\n")
	if runes := []rune(line); len(runes) > 40 {
		line = string(runes[:37]) + "..."
	}
	if line == "" {
		return "-"
	}
	return line
}
