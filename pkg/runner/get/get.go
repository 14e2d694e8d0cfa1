package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/printers"
)

// Get prints one journal entry.
type Get struct {
	ID   string
	JSON bool
	App  *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get, no journal")
	}
	e, err := n.App.Resolve(ctx, n.ID)
	if err != nil {
		return err
	}

	if n.JSON {
		b, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Entry(n.App.Catalog(ctx), e)
	return nil
}
