package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/aggregate"
	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/log"
	"tableflip.dev/moodlog/pkg/timeutil"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	mo := &options.MonthOptions{}
	var window string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "log"},
		Short:   "List entries grouped by day",
		Long: `List shows journal entries grouped by day, newest first, with a mood
summary for the window.

Examples:
  moodlog list
  moodlog list --window 3d
  moodlog list --window 1mo2w
  moodlog list --month 2025-2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := log.Log{
				ShowID: io.ShowID,
				JSON:   output.JSON,
			}
			if mo.MonthString != "" {
				month, err := mo.GetMonth(time.Now())
				if err != nil {
					return err
				}
				s.Since, s.Until = aggregate.MonthRange(month)
				s.Label = month.Format("January 2006")
			} else {
				w, err := timeutil.ParseWindow(window)
				if err != nil {
					return err
				}
				s.Until = time.Now()
				s.Since = w.Since(s.Until)
				s.Label = fmt.Sprintf("last %s", w)
			}

			e, err := load()
			if err != nil {
				return err
			}
			s.App = e.App
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&window, "window", "w", timeutil.DefaultWindow, "look-back window to include (for example 3d, 2w, 1mo)")
	options.AddMonthArgs(cmd, mo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addFavorites(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List favorite entries",
		Example: `
moodlog favorites -k
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := log.Log{
				Favorites: true,
				ShowID:    io.ShowID,
				JSON:      output.JSON,
				App:       e.App,
			}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
