package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/fav"
)

func addFav(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "fav <id>",
		Short: "Toggle the favorite flag of an entry",
		Example: `
moodlog fav 3f2a
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := fav.Fav{
				ID:  args[0],
				App: e.App,
			}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
