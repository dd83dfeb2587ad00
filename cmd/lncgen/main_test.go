package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-lncgen/pkg/export"
	"github.com/goliatone/go-lncgen/pkg/renderers"
	"github.com/goliatone/go-lncgen/pkg/testsupport"
)

const vaultDraft = `name: Vault
author: zed
category: pwn
difficulty: hard
flag: LNC25{abc}
port: 1337
hints:
  - description: check the binary
    cost: 50
files:
  - vault
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	envFile := filepath.Join(t.TempDir(), "none.env")
	cmd.SetArgs(append([]string{"--env-file", envFile}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRender_StructuredToStdout(t *testing.T) {
	path := testsupport.WriteFixture(t, "draft.yml", []byte(vaultDraft))
	out, _, err := run(t, "render", "--from", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want, err := renderers.RenderStructured(testsupport.VaultConfig(), testsupport.VaultFiles())
	if err != nil {
		t.Fatalf("reference render: %v", err)
	}
	if diff := cmp.Diff(want+"\n", out); diff != "" {
		t.Fatalf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_DownloadIntoOutDir(t *testing.T) {
	path := testsupport.WriteFixture(t, "draft.yml", []byte(vaultDraft))
	dir := filepath.Join(t.TempDir(), "dist")
	out, _, err := run(t, "render", "--from", path, "--kind", "summary", "--out", dir)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		t.Fatalf("read README.md: %v", err)
	}
	want, _ := renderers.RenderSummary(testsupport.VaultConfig(), testsupport.VaultFiles())
	if string(data) != want {
		t.Fatalf("README.md mismatch:\n%s", data)
	}
	if !strings.Contains(out, "saved ") {
		t.Fatalf("expected save notice, got %q", out)
	}
}

func TestRender_CopyRefusedWhenInvalid(t *testing.T) {
	var copied []string
	clipboardWriter = func(text string) error {
		copied = append(copied, text)
		return nil
	}
	t.Cleanup(func() { clipboardWriter = nil })

	path := testsupport.WriteFixture(t, "draft.yml", []byte("name: Broken\nflag: nope\n"))
	_, _, err := run(t, "render", "--from", path, "--copy")
	if !errors.Is(err, export.ErrInvalidModel) {
		t.Fatalf("expected ErrInvalidModel, got %v", err)
	}
	if len(copied) != 0 {
		t.Fatalf("clipboard should stay untouched")
	}
}

func TestRender_CopyWhenValid(t *testing.T) {
	var copied []string
	clipboardWriter = func(text string) error {
		copied = append(copied, text)
		return nil
	}
	t.Cleanup(func() { clipboardWriter = nil })

	path := testsupport.WriteFixture(t, "draft.yml", []byte(vaultDraft))
	out, _, err := run(t, "render", "--from", path, "--copy")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(copied) != 1 || !strings.Contains(copied[0], `"name": "Vault"`) {
		t.Fatalf("unexpected clipboard content: %q", copied)
	}
	if !strings.Contains(out, "chall.json copied to clipboard") {
		t.Fatalf("expected copy notice, got %q", out)
	}
}

func TestRender_InvalidDraftPrintsWarnings(t *testing.T) {
	path := testsupport.WriteFixture(t, "draft.json", []byte(`{"port": "99999"}`))
	out, stderr, err := run(t, "render", "--from", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `"port": 99999`) {
		t.Fatalf("numeric port should still be emitted:\n%s", out)
	}
	if !strings.Contains(stderr, "warning: port:") || !strings.Contains(stderr, "warning: flag:") {
		t.Fatalf("expected field warnings, got %q", stderr)
	}
}

func TestPreview_Plain(t *testing.T) {
	path := testsupport.WriteFixture(t, "draft.yml", []byte(vaultDraft))
	out, _, err := run(t, "preview", "--from", path, "--plain")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.HasPrefix(out, "# Vault\n") {
		t.Fatalf("unexpected preview:\n%s", out)
	}
}

func TestLint(t *testing.T) {
	good, err := renderers.RenderStructured(testsupport.VaultConfig(), nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	goodPath := testsupport.WriteFixture(t, "chall.json", []byte(good))
	out, _, err := run(t, "lint", goodPath)
	if err != nil {
		t.Fatalf("lint valid: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), ": ok") {
		t.Fatalf("unexpected lint output %q", out)
	}

	bad := strings.Replace(good, `"hard"`, `"brutal"`, 1)
	badPath := testsupport.WriteFixture(t, "bad.json", []byte(bad))
	out, _, err = run(t, "lint", badPath)
	if err == nil {
		t.Fatalf("expected lint failure")
	}
	if !strings.Contains(out, ": difficulty: ") {
		t.Fatalf("expected difficulty issue, got %q", out)
	}
}

func TestRender_MissingDraft(t *testing.T) {
	if _, _, err := run(t, "render", "--from", filepath.Join(t.TempDir(), "nope.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
