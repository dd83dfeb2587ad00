package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-lncgen/internal/config"
	"github.com/goliatone/go-lncgen/pkg/draft"
	"github.com/goliatone/go-lncgen/pkg/model"
	"github.com/goliatone/go-lncgen/pkg/render"
	"github.com/goliatone/go-lncgen/pkg/tui"
	"github.com/goliatone/go-lncgen/pkg/validation"
)

func newNewCmd(a *app) *cobra.Command {
	var from, saveDraft string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Fill in a challenge interactively",
		Long: `Opens the interactive form. Fields, hints, and files can be edited in any
order; documents can be previewed, copied, or downloaded once the flag and port
are valid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.session(from)
			if err != nil {
				return err
			}

			theme := tui.DefaultTheme()
			if a.cfg != nil && a.cfg.Theme == config.ThemePlain {
				theme = tui.PlainTheme()
			}
			s, err := tui.NewSession(o,
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
				tui.WithTheme(theme),
				tui.WithPreviewer(tui.MarkdownPreviewer(a.wordWrap())),
				tui.WithExporter(a.exporter(o)),
				tui.WithDownloadDir(a.outDir),
				tui.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			err = s.Run(contextFor(cmd))
			if errors.Is(err, tui.ErrAborted) {
				a.logger.Debug("session aborted")
				err = nil
			}
			if err != nil {
				return err
			}

			if saveDraft == "" {
				return nil
			}
			return writeDraft(saveDraft, o.Manager().Config(), o.Manager().Files())
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "draft file (YAML or JSON) to start from")
	cmd.Flags().StringVar(&saveDraft, "save-draft", "", "write the final state as a YAML draft")
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	var from, kind string
	var copyOut, download bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a document from a draft",
		Long: `Renders one document kind from a draft. Without --copy or --download the
document is printed to stdout. Passing --out implies --download. Copying and
downloading require a valid flag and port.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.session(from)
			if err != nil {
				return err
			}
			ctx := contextFor(cmd)
			exp := a.exporter(o)
			download = download || cmd.Flags().Changed("out")

			if !copyOut && !download {
				text, err := exp.Text(ctx, kind)
				if err != nil {
					return err
				}
				warnInvalid(cmd.ErrOrStderr(), o)
				fmt.Fprint(cmd.OutOrStdout(), text)
				if !strings.HasSuffix(text, "\n") {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				return nil
			}

			if copyOut {
				art, err := exp.Copy(ctx, kind)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s copied to clipboard\n", art.FileName)
			}
			if download {
				path, err := exp.Download(ctx, kind, a.outDir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "draft file (YAML or JSON)")
	cmd.Flags().StringVarP(&kind, "kind", "k", render.KindStructured, "document kind: structured, summary or yaml")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the document to the clipboard")
	cmd.Flags().BoolVar(&download, "download", false, "write the document into --out")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func newPreviewCmd(a *app) *cobra.Command {
	var from string
	var plain bool
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the README.md of a draft in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.session(from)
			if err != nil {
				return err
			}
			text, err := o.Render(contextFor(cmd), render.KindSummary)
			if err != nil {
				return err
			}
			if !plain {
				text, err = tui.RenderMarkdown(text, a.wordWrap())
				if err != nil {
					return err
				}
			}
			warnInvalid(cmd.ErrOrStderr(), o)
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "draft file (YAML or JSON)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print raw Markdown")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint <chall.json>",
		Short: "Check a structured document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("lint: %w", err)
			}
			result := validation.ValidateStructured(raw)
			if result.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
				return nil
			}
			for _, issue := range result.Issues {
				location := issue.Field
				if location == "" {
					location = "document"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s: %s\n", args[0], location, issue.Message)
			}
			a.logger.Debug("lint failed", zap.String("file", args[0]), zap.Int("issues", len(result.Issues)))
			return fmt.Errorf("lint: %s has %d issue(s)", args[0], len(result.Issues))
		},
	}
}

func writeDraft(path string, cfg model.Config, files []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	if err := draft.Encode(f, draft.FromConfig(cfg, files)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
