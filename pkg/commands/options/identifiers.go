package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each entry.")
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Specify the id, or a unique id prefix, of an entry.")
}

// IDFromArgs prefers the --id flag and falls back to the first argument.
func (o *IDOptions) IDFromArgs(args []string) string {
	if o.ID != "" || len(args) == 0 {
		return o.ID
	}
	return args[0]
}
