package commands

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(moodlog completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(moodlog completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func registerMoodCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("mood", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return moodCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("activity", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return activityCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// completionService opens the journal without logging; completion output
// must stay clean.
func completionService() *app.Service {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil
	}
	return app.New(store.NewRecords(p))
}

func moodCompletions(toComplete string) []string {
	svc := completionService()
	if svc == nil {
		return nil
	}
	var out []string
	for _, m := range svc.Moods(context.Background()) {
		if strings.HasPrefix(strings.ToLower(m.DisplayName()), strings.ToLower(toComplete)) {
			out = append(out, m.DisplayName())
		}
	}
	return out
}

func activityCompletions(toComplete string) []string {
	svc := completionService()
	if svc == nil {
		return nil
	}
	var out []string
	for _, a := range svc.Activities(context.Background()) {
		if strings.HasPrefix(strings.ToLower(a.Label), strings.ToLower(toComplete)) {
			out = append(out, strconv.Quote(a.Label))
		}
	}
	return out
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
