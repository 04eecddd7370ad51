// Command cctarget-gendoc writes the cctarget reference documentation: a
// Markdown page, a man page, and a table of what every Go port reports.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	build "github.com/thoreinstein/cctarget/cmd"
	"github.com/thoreinstein/cctarget/cmd/cctarget/commands"
	"github.com/thoreinstein/cctarget/internal/errors"
	"github.com/thoreinstein/cctarget/internal/logging"
	"github.com/thoreinstein/cctarget/internal/target"
	"github.com/thoreinstein/cctarget/pkg/fileutil"
)

func main() {
	if err := newGenDocCmd().Execute(); err != nil {
		logger := logging.Default()
		if hint := errors.Suggestion(err); hint != "" {
			logger = logger.With("suggestion", hint)
		}
		logger.Error("generating documentation", "error", err)
		os.Exit(errors.ExitCode(err))
	}
}

func newGenDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cctarget-gendoc",
		Short:         "Generate reference documentation for cctarget",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputDir, _ := cmd.Flags().GetString("dir")
			if outputDir == "" {
				return errors.NewUserError(errors.New("output directory is required"), "pass --dir")
			}
			if err := generate(outputDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Documentation generated in %s\n", outputDir)
			return nil
		},
	}
	cmd.Flags().StringP("dir", "d", "", "Output directory for documentation")
	return cmd
}

func generate(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	root := commands.Root()
	root.DisableAutoGenTag = true

	if err := doc.GenMarkdownTreeCustom(root, outputDir, filePrepender, linkHandler); err != nil {
		return errors.Wrap(err, "generating markdown")
	}

	header := &doc.GenManHeader{
		Title:   "CCTARGET",
		Section: "1",
		Source:  "cctarget " + build.Version,
		Manual:  "cctarget Manual",
	}
	if build.Date != "unknown" {
		if date, err := time.Parse(time.RFC3339, build.Date); err == nil {
			header.Date = &date
		}
	}
	if err := doc.GenManTree(root, header, outputDir); err != nil {
		return errors.Wrap(err, "generating man page")
	}

	var targets bytes.Buffer
	if err := writeTargets(&targets); err != nil {
		return errors.Wrap(err, "rendering targets.md")
	}
	if err := fileutil.AtomicWriteFile(filepath.Join(outputDir, "targets.md"), targets.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "writing targets.md")
	}
	return nil
}

// writeTargets renders a Markdown table of the report fields each port
// would print. The compiler column is omitted because it depends on the C
// toolchain present at build time.
func writeTargets(w io.Writer) error {
	var b strings.Builder
	b.WriteString(filePrepender("targets.md"))
	b.WriteString("\n# Reported identity per Go port\n\n")
	b.WriteString("| Port | Operating System | Architecture | Pointer Size |\n")
	b.WriteString("|------|------------------|--------------|--------------|\n")
	for _, p := range target.Ports() {
		info, err := target.Lookup(p.GOOS, p.GOARCH)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %d bytes |\n", p, info.OS, info.Arch.Display(), info.PointerSize)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for %s"
draft: false
toc: true
---
`, title, title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
