package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/share"
)

func addShare(topLevel *cobra.Command) {
	var memoDir string

	cmd := &cobra.Command{
		Use:   "share <id>",
		Short: "Print an entry as plain text",
		Example: `
moodlog share 3f2a | pbcopy
moodlog share 3f2a --export-memo ~/Desktop
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := share.Share{
				ID:      args[0],
				MemoDir: memoDir,
				App:     e.App,
				Media:   e.Media,
			}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&memoDir, "export-memo", "", "Copy the entry's voice memo into this directory.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
