package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the mood, note, activities or time of an entry",
		Example: `
moodlog edit 3f2a --mood rad
moodlog edit 3f2a --note "" -a friends
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			e, err := load()
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:  args[0],
				On:  on,
				App: e.App,
			}
			flags := cmd.Flags()
			if flags.Changed("mood") {
				s.Mood = &mo.Mood
			}
			if flags.Changed("note") {
				s.Note = &mo.Note
			}
			if flags.Changed("activity") {
				s.Activities = &mo.Activities
			}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	options.AddMoodArgs(cmd, mo)
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)
	registerMoodCompletions(cmd)

	topLevel.AddCommand(cmd)
}
