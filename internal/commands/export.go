package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/feriados-kalender/internal/export"
)

func newExportCmd(o *options) *cobra.Command {
	var (
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the holidays as ICS, CSV or JSON",
		Long: `Writes the holiday list in the given format to stdout, or with --out into
feriados_<year>.<format> inside that directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			if err := export.Write(&buf, format, o.calendar, o.now()); err != nil {
				return err
			}

			if outDir == "" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			path := filepath.Join(outDir, export.FileName(o.calendar.Year, format))
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			log.Debug("export written", "format", format, "bytes", buf.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Holidays exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", export.FormatICS, "export format: ics, csv or json")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: stdout)")
	return cmd
}
