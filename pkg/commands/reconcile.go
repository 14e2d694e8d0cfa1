package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/reconcile"
)

func addReconcile(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Repair favorites and mood records that drifted from the journal",
		Example: `
moodlog reconcile
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := reconcile.Reconcile{App: e.App}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
