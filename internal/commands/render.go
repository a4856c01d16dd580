package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/feriados-kalender/internal/calendar"
	"github.com/klabast/wb-services/feriados-kalender/internal/theme"
	"github.com/klabast/wb-services/feriados-kalender/internal/view"
)

func newRenderCmd(o *options) *cobra.Command {
	var (
		outDir   string
		toStdout bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Generate the static calendar page",
		Long: `Generates index.html with the twelve month grids of the configured year,
plus its stylesheet and theme script, into the output directory. The page
starts in the persisted theme.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			toggle, store, err := o.openToggle(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store)

			page, err := o.buildPage(toggle)
			if err != nil {
				return err
			}

			manager, err := view.NewManager()
			if err != nil {
				return err
			}

			if toStdout {
				return manager.RenderPage(cmd.OutOrStdout(), page)
			}

			if outDir == "" {
				outDir = o.cfg.OutputDir
			}
			indexPath, err := manager.WriteSite(outDir, page)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Calendar written to %s (theme: %s)\n", indexPath, toggle.Mode())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: output_dir from config)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write only the HTML page to stdout")
	return cmd
}

// buildPage lays out the calendar for today and wraps it for the templates.
func (o *options) buildPage(toggle *theme.Toggle) (*view.Page, error) {
	footer, err := view.RenderMarkdown(o.cfg.Page.FooterMarkdown)
	if err != nil {
		return nil, err
	}

	cal := o.calendar
	return &view.Page{
		Title:      o.cfg.Page.Title,
		BodyClass:  toggle.BodyClass(),
		Pressed:    toggle.Pressed(),
		Preference: toggle.Preference().String(),
		Year:       calendar.Build(cal, o.now()),
		Holidays:   calendar.BuildHolidayIndex(cal.Year, cal.Holidays).Entries(),
		Footer:     footer,
	}, nil
}
