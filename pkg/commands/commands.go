package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodlog/pkg/commands/options"
)

var (
	output  = &options.OutputOptions{}
	verbose bool
)

func New() *cobra.Command {
	output = &options.OutputOptions{}
	verbose = false

	cmd := &cobra.Command{
		Use:   "moodlog",
		Short: base.Wrap80("Mood tracking and journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log debug details to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addFav(topLevel)
	addPhoto(topLevel)
	addGet(topLevel)
	addList(topLevel)
	addFavorites(topLevel)
	addSearch(topLevel)
	addCalendar(topLevel)
	addWeek(topLevel)
	addChart(topLevel)
	addInsights(topLevel)
	addActivities(topLevel)
	addTheme(topLevel)
	addReconcile(topLevel)
	addShare(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
}
