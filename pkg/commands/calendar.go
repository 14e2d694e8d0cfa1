package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	months := 1

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month coloured by mood",
		Example: `
moodlog calendar
moodlog calendar --month 2025-1 --months 3
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			now := time.Now()
			month, err := mo.GetMonth(now)
			if err != nil {
				return err
			}
			e, err := load()
			if err != nil {
				return err
			}
			s := calendar.Calendar{
				Month:  month,
				Months: months,
				Today:  now,
				App:    e.App,
			}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	cmd.Flags().IntVar(&months, "months", 1, "Number of consecutive months to show.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
