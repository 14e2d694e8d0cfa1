package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	md := &options.MediaOptions{}
	oo := &options.OnOptions{}
	var (
		favorite  bool
		draft     bool
		fromDraft bool
	)

	cmd := &cobra.Command{
		Use:   "add [note]",
		Short: "Record how you feel",
		Example: `
moodlog add --mood good -a sport,read "went for a run"
moodlog add --mood 0 --on 2025-3-1 --photo ~/beach.jpg
moodlog add --mood bad --draft "started writing this"
moodlog add --from-draft
`,
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
			note := mo.Note
			if note == "" && len(args) > 0 {
				note = joinArgs(args)
			}
			s := add.Add{
				Mood:       mo.Mood,
				Note:       note,
				Activities: mo.Activities,
				On:         on,
				Favorite:   favorite,
				Photos:     md.Photos,
				Recording:  md.Recording,
				Draft:      draft,
				FromDraft:  fromDraft,
				App:        e.App,
				Media:      e.Media,
				Logger:     e.Logger,
			}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	options.AddMoodArgs(cmd, mo)
	options.AddMediaArgs(cmd, md)
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVarP(&favorite, "favorite", "f", false, "Mark the entry as a favorite.")
	cmd.Flags().BoolVar(&draft, "draft", false, "Save as a draft instead of recording the entry.")
	cmd.Flags().BoolVar(&fromDraft, "from-draft", false, "Start from the saved draft; flags override its fields.")
	registerMoodCompletions(cmd)

	topLevel.AddCommand(cmd)
}
