package info

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/store"
)

type Info struct {
	Config  store.Config
	Records *store.Records
}

func (n *Info) Do(ctx context.Context) error {

	if override := os.Getenv("MOODLOG_CONFIG_PATH"); override != "" {
		fmt.Println("MOODLOG_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("MOODLOG_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())
	fmt.Println("Config.media: ", n.Config.MediaPath())
	fmt.Println("Config.weekStartsOn: ", n.Config.WeekStartsOn())

	if n.Records == nil {
		return fmt.Errorf("Failed to create persistence object.")
	}

	fmt.Printf("Collections:\n")
	pp := printers.PrettyPrint{}
	pp.Collections(n.Records.Collections(ctx))

	return nil
}
