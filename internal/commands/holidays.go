package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/feriados-kalender/internal/calendar"
)

func newHolidaysCmd(o *options) *cobra.Command {
	var workdays bool

	cmd := &cobra.Command{
		Use:   "holidays [YYYY-MM-DD]",
		Short: "List the holidays, or look up a single date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := o.calendar
			idx := calendar.BuildHolidayIndex(cal.Year, cal.Holidays)
			out := cmd.OutOrStdout()

			if workdays {
				total := 0
				for m, n := range cal.Workdays() {
					fmt.Fprintf(out, "%-16s %2d\n", cal.MonthTitle(m), n)
					total += n
				}
				fmt.Fprintf(out, "%-16s %d\n", "Total", total)
				return nil
			}

			if len(args) == 0 {
				for _, e := range idx.Entries() {
					fmt.Fprintf(out, "%s  %s\n", e.Key, e.Name)
				}
				return nil
			}

			date, err := time.Parse(calendar.DateKeyLayout, args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", args[0])
			}

			key := date.Format(calendar.DateKeyLayout)
			name, ok := idx.Lookup(key)
			if !ok {
				return fmt.Errorf("%s is not a holiday", key)
			}
			fmt.Fprintf(out, "%s  %s\n", key, name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&workdays, "workdays", false, "print working days per month instead (Monday to Friday, minus holidays)")
	return cmd
}
