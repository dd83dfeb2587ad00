package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-lncgen/internal/config"
	"github.com/goliatone/go-lncgen/pkg/draft"
	"github.com/goliatone/go-lncgen/pkg/export"
	"github.com/goliatone/go-lncgen/pkg/form"
	"github.com/goliatone/go-lncgen/pkg/orchestrator"
	"github.com/goliatone/go-lncgen/pkg/renderers/summary"
)

// clipboardWriter replaces the system clipboard when set.
var clipboardWriter export.ClipboardWriter

// app carries state shared by every subcommand.
type app struct {
	verbose  bool
	envFiles []string
	outDir   string

	cfg    *config.Config
	logger *zap.Logger

	clipboard export.ClipboardWriter
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop(), clipboard: clipboardWriter}

	root := &cobra.Command{
		Use:   "lncgen",
		Short: "Generate LNC25 challenge configuration documents",
		Long: `lncgen builds the chall.json and README.md files for an LNC25 challenge.

Run "lncgen new" for the interactive form, or render an existing draft with
"lncgen render --from draft.yml".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.envFiles...)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.outDir == "" {
				a.outDir = cfg.DownloadDir
			}

			zcfg := zap.NewProductionConfig()
			zcfg.Level = zap.NewAtomicLevelAt(cfg.Level())
			if a.verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load (default .env)")
	root.PersistentFlags().StringVarP(&a.outDir, "out", "o", "", "directory for downloaded documents (default LNCGEN_DOWNLOAD_DIR)")

	root.AddCommand(
		newNewCmd(a),
		newRenderCmd(a),
		newPreviewCmd(a),
		newLintCmd(a),
	)
	return root
}

// session builds an orchestrator, seeded from the draft at path when set.
func (a *app) session(path string) (*orchestrator.Orchestrator, error) {
	m := form.New(form.WithLogger(a.logger))
	if path != "" {
		d, err := draft.Load(path)
		if err != nil {
			return nil, err
		}
		if err := d.Apply(m); err != nil {
			return nil, err
		}
	}

	var summaryOpts []summary.Option
	if a.cfg != nil && a.cfg.Sanitize {
		summaryOpts = append(summaryOpts, summary.WithSanitizer(nil))
	}
	return orchestrator.New(
		orchestrator.WithManager(m),
		orchestrator.WithSummaryOptions(summaryOpts...),
		orchestrator.WithLogger(a.logger),
	)
}

func (a *app) exporter(o *orchestrator.Orchestrator) *export.Exporter {
	return export.New(o,
		export.WithLogger(a.logger),
		export.WithClipboard(a.clipboard),
	)
}

func (a *app) wordWrap() int {
	if a.cfg == nil {
		return 80
	}
	return a.cfg.WordWrap
}

// warnInvalid lists the field errors on w when the model cannot be exported.
func warnInvalid(w io.Writer, o *orchestrator.Orchestrator) {
	for _, fe := range o.Manager().FieldErrors() {
		fmt.Fprintf(w, "warning: %s: %s\n", fe.Field, fe.Message)
	}
}

func contextFor(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
