package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about collections and where they are stored.",
		Example: `
moodlog info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := info.Info{
				Config:  e.Config,
				Records: e.Records,
			}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
