package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/insights"
)

func addInsights(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var weekly bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Dominant mood, best and worst day of a month or week",
		Example: `
moodlog insights
moodlog insights --week --on 2025-3-10
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
			s := insights.Insights{
				On:           on,
				Week:         weekly,
				WeekStartsOn: e.Config.WeekStartsOn(),
				JSON:         output.JSON,
				App:          e.App,
			}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVar(&weekly, "week", false, "Summarize the week instead of the month.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
