package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/lifedash/internal/analytics"
	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/config"
	"github.com/Veraticus/lifedash/internal/export"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export dashboard data to files",
		Long: `Write every record plus the current metrics to a dated file.

JSON and YAML produce a single document. CSV writes one file per collection
(study tasks, expenses, habits, fitness goals); empty collections are skipped.`,
		Example: `  lifedash export
  lifedash export --format csv --dir ~/backups
  lifedash export --stdout --format yaml`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("format", "f", "json", "Output format (json, yaml, csv)")
	cmd.Flags().String("dir", ".", "Directory to write into")
	cmd.Flags().String("base", export.DefaultBaseName, "File name prefix")
	cmd.Flags().Bool("stdout", false, "Write JSON or YAML to stdout instead of a file")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	dir, _ := cmd.Flags().GetString("dir")
	base, _ := cmd.Flags().GetString("base")
	toStdout, _ := cmd.Flags().GetBool("stdout")

	format = strings.ToLower(format)
	switch format {
	case "json", "yaml", "csv":
	default:
		return common.NewUserError(fmt.Sprintf("unknown format %q (want json, yaml or csv)", format), nil)
	}
	if toStdout && format == "csv" {
		return common.NewUserError("--stdout only works with json and yaml", nil)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	snap := a.store.Snapshot()
	now := a.store.Now()
	out := cmd.OutOrStdout()

	if toStdout {
		return writeDocument(out, format, snap, now)
	}

	dir = config.ExpandPath(dir)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	var written []string
	if format == "csv" {
		written, err = exportCSV(dir, base, snap, now)
	} else {
		path := filepath.Join(dir, export.FileName(base, format, now))
		err = writeFile(path, func(w io.Writer) error {
			return writeDocument(w, format, snap, now)
		})
		written = []string{path}
	}
	if err != nil {
		return err
	}

	if len(written) == 0 {
		_, err := fmt.Fprintln(out, cli.InfoStyle.Render("Nothing to export yet."))
		return err
	}
	for _, path := range written {
		if _, err := fmt.Fprintln(out, cli.FormatSuccess("Exported "+path)); err != nil {
			return err
		}
	}
	return nil
}

func writeDocument(w io.Writer, format string, snap model.Snapshot, now time.Time) error {
	metrics := analytics.Metrics(snap)
	if format == "yaml" {
		return export.YAML(w, snap, metrics, now)
	}
	return export.JSON(w, snap, metrics, now)
}

func exportCSV(dir, base string, snap model.Snapshot, now time.Time) ([]string, error) {
	if base == "" {
		base = export.DefaultBaseName
	}

	var written []string
	for _, c := range export.Collections() {
		path := filepath.Join(dir, export.FileName(base+"-"+string(c), "csv", now))

		var rows int
		err := writeFile(path, func(w io.Writer) error {
			n, err := export.CSV(w, snap, c)
			rows = n
			return err
		})
		if err != nil {
			return written, err
		}
		if rows == 0 {
			if err := os.Remove(path); err != nil {
				slog.Warn("Failed to remove empty export", "path", path, "error", err)
			}
			continue
		}
		slog.Debug("Exported collection", "collection", c, "rows", rows, "path", path)
		written = append(written, path)
	}
	return written, nil
}

// writeFile creates path and hands it to write, closing it afterwards.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // path is built from user flags
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
