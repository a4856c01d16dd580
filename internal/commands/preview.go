package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/klabast/wb-services/feriados-kalender/internal/calendar"
	"github.com/klabast/wb-services/feriados-kalender/internal/view"
)

const defaultPreviewWidth = 80

func newPreviewCmd(o *options) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the calendar to the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			toggle, store, err := o.openToggle(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store)

			if width <= 0 {
				width = terminalWidth()
			}

			cal := o.calendar
			year := calendar.Build(cal, o.now())
			holidays := calendar.BuildHolidayIndex(cal.Year, cal.Holidays).Entries()

			out := cmd.OutOrStdout()
			_, err = fmt.Fprint(out, view.NewTextRenderer(out, toggle.Mode(), width).Render(year, holidays))
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "output width in columns (default: terminal width)")
	return cmd
}

// terminalWidth returns the stdout terminal width, or a default when stdout
// is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultPreviewWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultPreviewWidth
	}
	return w
}
