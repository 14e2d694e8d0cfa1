package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/week"
)

func addWeek(topLevel *cobra.Command) {
	addWeekCommand(topLevel, "week", "Mood counts and gauge for a Monday-first week", false)
}

func addChart(topLevel *cobra.Command) {
	addWeekCommand(topLevel, "chart", "Daily average mood for a week", true)
}

func addWeekCommand(topLevel *cobra.Command, use, short string, chart bool) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Example: `
moodlog ` + use + `
moodlog ` + use + ` --on 2025-3-1
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.OnOrNow()
			if err != nil {
				return err
			}
			e, err := load()
			if err != nil {
				return err
			}
			s := week.Week{
				On:           on,
				WeekStartsOn: e.Config.WeekStartsOn(),
				Chart:        chart,
				App:          e.App,
			}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
