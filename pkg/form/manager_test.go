package form_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-lncgen/pkg/form"
	"github.com/goliatone/go-lncgen/pkg/model"
)

func TestNew_Defaults(t *testing.T) {
	m := form.New()
	cfg := m.Config()
	if cfg.Category != model.CategoryMisc || cfg.Difficulty != model.DifficultyEasy {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if m.FlagValid() {
		t.Fatalf("empty flag must not be valid")
	}
	if m.Valid() {
		t.Fatalf("default model must not be exportable")
	}
	if m.HintCursor().Editing() || m.FileCursor().Editing() {
		t.Fatalf("cursors should start idle")
	}
}

func TestSetField_FlagAndPortValidity(t *testing.T) {
	m := form.New()

	if err := m.SetField(model.FieldNameFlag, "LNC25{ok}"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if !m.FlagValid() || !m.Valid() {
		t.Fatalf("expected valid model after setting flag")
	}

	if err := m.SetField(model.FieldNamePort, "70000"); err != nil {
		t.Fatalf("set port: %v", err)
	}
	if m.PortError() != model.PortErrorMessage {
		t.Fatalf("port error = %q", m.PortError())
	}
	if m.Valid() {
		t.Fatalf("out-of-range port must block export")
	}
	if got := m.Config().Port; got != "70000" {
		t.Fatalf("invalid port must still be stored, got %q", got)
	}

	if err := m.SetField(model.FieldNamePort, ""); err != nil {
		t.Fatalf("clear port: %v", err)
	}
	if m.PortError() != "" || !m.Valid() {
		t.Fatalf("clearing the port should clear the error")
	}

	if err := m.SetField(model.FieldNameFlag, "flag{nope}"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	fieldErrs := m.FieldErrors()
	if len(fieldErrs) != 1 || fieldErrs[0].Field != model.FieldNameFlag {
		t.Fatalf("unexpected field errors: %+v", fieldErrs)
	}
	var fe model.FieldValidationError
	if !errors.As(m.Err(), &fe) {
		t.Fatalf("Err() should wrap a FieldValidationError, got %v", m.Err())
	}
}

func TestSetField_Enums(t *testing.T) {
	m := form.New()
	if err := m.SetField(model.FieldNameCategory, "pwn"); err != nil {
		t.Fatalf("set category: %v", err)
	}
	err := m.SetField(model.FieldNameDifficulty, "nightmare")
	var fe model.FieldValidationError
	if !errors.As(err, &fe) || fe.Field != model.FieldNameDifficulty {
		t.Fatalf("expected difficulty validation error, got %v", err)
	}
	cfg := m.Config()
	if cfg.Category != model.CategoryPwn || cfg.Difficulty != model.DifficultyEasy {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if err := m.SetField("points", "100"); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestAddOrUpdateHint_RejectsInvalidInput(t *testing.T) {
	m := form.New()
	if err := m.AddOrUpdateHint("first", "10"); err != nil {
		t.Fatalf("add hint: %v", err)
	}

	cases := []struct{ desc, cost string }{
		{"", "10"},
		{"negative", "-1"},
		{"words", "ten"},
		{"blank cost", ""},
	}
	for _, tc := range cases {
		err := m.AddOrUpdateHint(tc.desc, tc.cost)
		var ie model.ItemValidationError
		if !errors.As(err, &ie) {
			t.Fatalf("AddOrUpdateHint(%q, %q) err = %v, want ItemValidationError", tc.desc, tc.cost, err)
		}
		if ie.Message != model.HintErrorMessage || m.HintError() != model.HintErrorMessage {
			t.Fatalf("unexpected message %q / %q", ie.Message, m.HintError())
		}
		if diff := cmp.Diff([]model.Hint{{Description: "first", Cost: 10}}, m.Hints()); diff != "" {
			t.Fatalf("hints changed on rejected input (-want +got):\n%s", diff)
		}
		if got := m.HintDraft(); got.Description != tc.desc || got.Cost != tc.cost {
			t.Fatalf("rejected input should stay staged, got %+v", got)
		}
	}

	if err := m.AddOrUpdateHint("second", "0"); err != nil {
		t.Fatalf("add hint: %v", err)
	}
	if m.HintError() != "" {
		t.Fatalf("successful add should clear the hint error")
	}
	if (m.HintDraft() != form.HintDraft{}) {
		t.Fatalf("successful add should clear the draft")
	}
}

func TestEditHint_ReplacesInPlace(t *testing.T) {
	m := form.New()
	for _, h := range []struct{ d, c string }{{"a", "1"}, {"b", "2"}, {"c", "3"}} {
		if err := m.AddOrUpdateHint(h.d, h.c); err != nil {
			t.Fatalf("add hint: %v", err)
		}
	}

	if err := m.EditHint(1); err != nil {
		t.Fatalf("edit hint: %v", err)
	}
	if idx, ok := m.HintCursor().Index(); !ok || idx != 1 {
		t.Fatalf("cursor = %v", m.HintCursor())
	}
	if diff := cmp.Diff(form.HintDraft{Description: "b", Cost: "2"}, m.HintDraft()); diff != "" {
		t.Fatalf("draft mismatch (-want +got):\n%s", diff)
	}
	if len(m.Hints()) != 3 {
		t.Fatalf("editing must not mutate the list")
	}

	if err := m.AddOrUpdateHint("b2", "20"); err != nil {
		t.Fatalf("update hint: %v", err)
	}
	want := []model.Hint{
		{Description: "a", Cost: 1},
		{Description: "b2", Cost: 20},
		{Description: "c", Cost: 3},
	}
	if diff := cmp.Diff(want, m.Hints()); diff != "" {
		t.Fatalf("hints mismatch (-want +got):\n%s", diff)
	}
	if m.HintCursor().Editing() {
		t.Fatalf("cursor should reset after update")
	}
}

func TestEditHint_FailedUpdateKeepsCursor(t *testing.T) {
	m := form.New()
	_ = m.AddOrUpdateHint("a", "1")
	if err := m.EditHint(0); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := m.AddOrUpdateHint("a", "-5"); err == nil {
		t.Fatalf("expected validation error")
	}
	if !m.HintCursor().Editing() {
		t.Fatalf("rejected update should keep the edit cursor")
	}
	m.CancelHintEdit()
	if m.HintCursor().Editing() || m.HintError() != "" {
		t.Fatalf("cancel should reset cursor and error")
	}
}

func TestDeleteFile_ShiftsIndices(t *testing.T) {
	m := form.New()
	for _, f := range []string{"a.zip", "b.zip", "c.zip", "d.zip"} {
		if err := m.AddOrUpdateFile(f); err != nil {
			t.Fatalf("add file: %v", err)
		}
	}
	if err := m.DeleteFile(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if diff := cmp.Diff([]string{"a.zip", "c.zip", "d.zip"}, m.Files()); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestDelete_OutOfRange(t *testing.T) {
	m := form.New()
	_ = m.AddOrUpdateFile("a")

	for _, idx := range []int{-1, 1, 5} {
		var ie model.IndexError
		if err := m.DeleteFile(idx); !errors.As(err, &ie) {
			t.Fatalf("DeleteFile(%d) = %v, want IndexError", idx, err)
		}
		if err := m.DeleteHint(idx); !errors.As(err, &ie) || ie.List != model.ListHints {
			t.Fatalf("DeleteHint(%d) = %v, want hints IndexError", idx, err)
		}
		if err := m.EditFile(idx); !errors.As(err, &ie) {
			t.Fatalf("EditFile(%d) = %v, want IndexError", idx, err)
		}
	}
	if len(m.Files()) != 1 {
		t.Fatalf("out-of-range delete must not change the list")
	}
}

func TestAddOrUpdateFile_EmptyIsNoop(t *testing.T) {
	m := form.New()
	_ = m.AddOrUpdateFile("keep")
	if err := m.EditFile(0); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := m.AddOrUpdateFile(""); err != nil {
		t.Fatalf("empty add: %v", err)
	}
	if diff := cmp.Diff([]string{"keep"}, m.Files()); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
	if !m.FileCursor().Editing() || m.FileDraft() != "keep" {
		t.Fatalf("empty add must not touch cursor or draft")
	}

	if err := m.AddOrUpdateFile("renamed"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if diff := cmp.Diff([]string{"renamed"}, m.Files()); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
	if m.FileCursor().Editing() || m.FileDraft() != "" {
		t.Fatalf("update should reset cursor and draft")
	}
}

func TestDelete_AdjustsEditCursor(t *testing.T) {
	m := form.New()
	for _, f := range []string{"a", "b", "c"} {
		_ = m.AddOrUpdateFile(f)
	}

	if err := m.EditFile(2); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := m.DeleteFile(0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if idx, ok := m.FileCursor().Index(); !ok || idx != 1 {
		t.Fatalf("cursor should follow the edited item, got %v", m.FileCursor())
	}
	if err := m.AddOrUpdateFile("c2"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if diff := cmp.Diff([]string{"b", "c2"}, m.Files()); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}

	if err := m.EditFile(0); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := m.DeleteFile(0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if m.FileCursor().Editing() {
		t.Fatalf("deleting the edited item should reset the cursor")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	m := form.New()
	_ = m.AddOrUpdateFile("a")
	_ = m.AddOrUpdateHint("h", "1")

	files := m.Files()
	files[0] = "mutated"
	hints := m.Hints()
	hints[0].Cost = 42

	if m.Files()[0] != "a" || m.Hints()[0].Cost != 1 {
		t.Fatalf("accessors leaked internal storage")
	}
}

func TestWithConfigSeedsState(t *testing.T) {
	cfg := model.Config{Flag: "LNC25{seed}", Port: "0"}
	m := form.New(form.WithConfig(cfg), form.WithFiles([]string{"x"}))
	if !m.FlagValid() {
		t.Fatalf("seeded flag should be validated")
	}
	if m.PortError() == "" {
		t.Fatalf("seeded port should be validated")
	}
	if got := m.Config().Category; got != model.DefaultCategory {
		t.Fatalf("empty category should default, got %q", got)
	}
	if diff := cmp.Diff([]string{"x"}, m.Files()); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestWithConfigRejectsUnknownEnums(t *testing.T) {
	cfg := model.Config{
		Category:   "stego",
		Difficulty: "nightmare",
		Flag:       "LNC25{x}",
	}
	m := form.New(form.WithConfig(cfg))
	if m.Valid() {
		t.Fatalf("unknown category and difficulty must block export")
	}
	want := []model.FieldValidationError{
		{Field: model.FieldNameCategory, Value: "stego", Message: model.CategoryErrorMessage},
		{Field: model.FieldNameDifficulty, Value: "nightmare", Message: model.DifficultyErrorMessage},
	}
	if diff := cmp.Diff(want, m.FieldErrors()); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	if err := m.SetField(model.FieldNameCategory, "web"); err != nil {
		t.Fatalf("set category: %v", err)
	}
	if err := m.SetField(model.FieldNameDifficulty, "easy"); err != nil {
		t.Fatalf("set difficulty: %v", err)
	}
	if !m.Valid() {
		t.Fatalf("expected valid after fixing enums, errors: %v", m.Err())
	}
}
