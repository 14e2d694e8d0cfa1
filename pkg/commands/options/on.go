package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOTime  = "2006-1-2 15:04"
	layoutISOShort = "1/2"
	layoutMonth    = "2006-1"
)

// OnOptions
type OnOptions struct {
	OnString string
	// Now is used for relative dates; defaults to time.Now.
	Now func() time.Time
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28", --on="2020-2-28 21:30" or --on="2/28".`)
}

func (o *OnOptions) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	for _, layout := range []string{layoutISOTime, layoutISO} {
		if t, err := time.ParseInLocation(layout, o.OnString, time.Local); err == nil {
			return &t, nil
		}
	}
	t, err := time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", o.OnString)
	}
	// Moods are logged after the fact: a month/day without a year that would
	// land in the future means last year.
	now := o.now()
	t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	if t.After(now) {
		t = t.AddDate(-1, 0, 0)
	}
	return &t, nil
}

// OnOrNow is GetOn with the current time when no date was given.
func (o *OnOptions) OnOrNow() (time.Time, error) {
	on, err := o.GetOn()
	if err != nil || on == nil {
		return o.now(), err
	}
	return *on, nil
}

// MonthOptions
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Specify a month, example: --month="2020-2". Defaults to the current month.`)
}

// GetMonth parses --month, falling back to now.
func (o *MonthOptions) GetMonth(now time.Time) (time.Time, error) {
	if o.MonthString == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(layoutMonth, o.MonthString, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q", o.MonthString)
	}
	return t, nil
}
