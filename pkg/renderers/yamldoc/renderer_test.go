package yamldoc_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-lncgen/pkg/model"
	"github.com/goliatone/go-lncgen/pkg/render"
	"github.com/goliatone/go-lncgen/pkg/renderers/structured"
	"github.com/goliatone/go-lncgen/pkg/renderers/yamldoc"
	"github.com/goliatone/go-lncgen/pkg/testsupport"
)

func TestRender_VaultRoundTrip(t *testing.T) {
	cfg := testsupport.VaultConfig()
	out, err := yamldoc.New().Render(context.Background(), render.NewDocument(cfg, nil))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	if !strings.HasPrefix(text, "name: Vault\nauthor: zed\n") {
		t.Fatalf("unexpected key order:\n%s", text)
	}
	if !strings.Contains(text, "port: 1337\n") {
		t.Fatalf("expected integer port:\n%s", text)
	}

	var decoded structured.Payload
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(structured.NewPayload(cfg), decoded); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_OmitsEmptyOptionalKeys(t *testing.T) {
	out, err := yamldoc.New().Render(context.Background(), render.NewDocument(model.NewConfig(), nil))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, key := range []string{"port:", "hints:", "requirements:"} {
		if strings.Contains(string(out), key) {
			t.Fatalf("expected %q to be omitted:\n%s", key, out)
		}
	}
}
