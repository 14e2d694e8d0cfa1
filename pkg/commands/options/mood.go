package options

import (
	"github.com/spf13/cobra"
)

// MoodOptions carries the fields of a journal entry.
type MoodOptions struct {
	Mood       string
	Note       string
	Activities []string
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().StringVar(&o.Mood, "mood", "",
		"Mood name or slot id (0-4). Defaults to the last mood used.")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Free text note.")
	cmd.Flags().StringSliceVarP(&o.Activities, "activity", "a", nil,
		"Activity label or id, repeat or comma separate for several.")
}

// MediaOptions lists files to attach.
type MediaOptions struct {
	Photos    []string
	Recording string
}

func AddMediaArgs(cmd *cobra.Command, o *MediaOptions) {
	cmd.Flags().StringSliceVarP(&o.Photos, "photo", "p", nil,
		"Image file to attach, repeat for several.")
	cmd.Flags().StringVar(&o.Recording, "recording", "",
		"Voice memo file to attach.")
}
