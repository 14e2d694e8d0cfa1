package commands

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

const modulePath = "tableflip.dev/moodlog/cmd/moodlog"

func addUpgrade(topLevel *cobra.Command) {
	var to string

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Reinstall moodlog with go install",
		Example: `
moodlog upgrade
moodlog upgrade --to v0.3.0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ref := strings.TrimSpace(to)
			if ref == "" {
				ref = "latest"
			}
			ex := exec.CommandContext(contextOf(cmd), "go", "install", modulePath+"@"+ref)
			ex.Stderr = os.Stderr
			if err := ex.Run(); err != nil {
				return output.HandleError(fmt.Errorf("%s: %w", ex.String(), err))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "installed %s@%s (was %s)\n", modulePath, ref, version)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "version to install (default latest)")

	topLevel.AddCommand(cmd)
}
