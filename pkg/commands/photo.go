package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/photo"
)

func addPhoto(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "photo <id> <file>...",
		Short: "Attach photos to an entry",
		Example: `
moodlog photo 3f2a ~/Pictures/sunset.jpg
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := photo.Photo{
				ID:     args[0],
				Paths:  args[1:],
				App:    e.App,
				Media:  e.Media,
				Logger: e.Logger,
			}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
