package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Find entries by date, mood, note or activity",
		Long: `Search matches the query, ignoring case, against the entry date written
as "02 January 2006", the mood name, the note and the activity labels. With
no query the entries of --month are listed.`,
		Example: `
moodlog search march
moodlog search "good"
moodlog search --month 2025-2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			month, err := mo.GetMonth(time.Now())
			if err != nil {
				return err
			}
			e, err := load()
			if err != nil {
				return err
			}
			s := search.Search{
				Query:  joinArgs(args),
				Month:  month,
				ShowID: io.ShowID,
				App:    e.App,
			}
			err = s.Do(contextOf(cmd))
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
