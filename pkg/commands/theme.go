package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/theme"
)

func addTheme(topLevel *cobra.Command) {
	var (
		palette int
		emoji   int
		renames []string
		list    bool
	)

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change mood colours, faces and names",
		Example: `
moodlog theme
moodlog theme --list
moodlog theme --palette 2 --emoji 6
moodlog theme --rename 0=great --rename 4=terrible
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := theme.Theme{List: list}
			if cmd.Flags().Changed("palette") {
				s.Palette = &palette
			}
			if cmd.Flags().Changed("emoji") {
				s.EmojiTheme = &emoji
			}
			if len(renames) > 0 {
				s.Rename = make(map[int]string, len(renames))
				for _, r := range renames {
					slot, name, ok := strings.Cut(r, "=")
					id, err := strconv.Atoi(strings.TrimSpace(slot))
					if !ok || err != nil {
						return fmt.Errorf("invalid rename %q, expected <slot>=<name>", r)
					}
					s.Rename[id] = name
				}
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

	cmd.Flags().IntVar(&palette, "palette", 0, "Colour palette index.")
	cmd.Flags().IntVar(&emoji, "emoji", 0, "Emoji theme index.")
	cmd.Flags().StringArrayVar(&renames, "rename", nil, "Rename a mood slot, as <slot>=<name>.")
	cmd.Flags().BoolVar(&list, "list", false, "List every palette and emoji theme.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
