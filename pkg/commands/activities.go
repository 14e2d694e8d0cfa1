package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/activities"
)

func addActivities(topLevel *cobra.Command) {
	var add, icon string

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List or extend the activity catalog",
		Example: `
moodlog activities
moodlog activities --add gardening --icon flower
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := activities.Activities{
				Add:  add,
				Icon: icon,
				App:  e.App,
			}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&add, "add", "", "Label of a new activity.")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon name of the new activity.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
