package entry

import (
	"strconv"
	"strings"
)

// Activity is a tag a journal entry can reference by id.
type Activity struct {
	ID    int    `json:"id"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// DefaultActivities is the catalog seeded when none is stored.
func DefaultActivities() []Activity {
	return []Activity{
		{ID: 1, Icon: "account-group", Label: "family"},
		{ID: 2, Icon: "account-multiple", Label: "friends"},
		{ID: 3, Icon: "heart", Label: "date"},
		{ID: 4, Icon: "yoga", Label: "exercise"},
		{ID: 5, Icon: "run", Label: "sport"},
		{ID: 6, Icon: "bed", Label: "sleep early"},
		{ID: 7, Icon: "food-apple", Label: "eat healthy"},
		{ID: 8, Icon: "umbrella-beach", Label: "relax"},
		{ID: 9, Icon: "television", Label: "movies"},
		{ID: 10, Icon: "book-open-variant", Label: "read"},
		{ID: 11, Icon: "gamepad-variant", Label: "gaming"},
		{ID: 12, Icon: "broom", Label: "cleaning"},
		{ID: 13, Icon: "cart", Label: "shopping"},
		{ID: 14, Icon: "food", Label: "Cooking"},
		{ID: 15, Icon: "meditation", Label: "meditation"},
	}
}

// Catalog indexes activities by id.
type Catalog map[int]Activity

func NewCatalog(activities []Activity) Catalog {
	c := make(Catalog, len(activities))
	for _, a := range activities {
		c[a.ID] = a
	}
	return c
}

// Labels resolves ids to labels, skipping ids missing from the catalog.
func (c Catalog) Labels(ids []int) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if a, ok := c[id]; ok && a.Label != "" {
			labels = append(labels, a.Label)
		}
	}
	return labels
}

// Lookup finds an activity by id or case-insensitive label.
func (c Catalog) Lookup(raw string) (Activity, bool) {
	raw = strings.TrimSpace(raw)
	for _, a := range c {
		if strings.EqualFold(a.Label, raw) {
			return a, true
		}
	}
	for _, a := range c {
		if strconv.Itoa(a.ID) == raw {
			return a, true
		}
	}
	return Activity{}, false
}

// UniqueActivities drops duplicate ids, keeping first occurrence order.
func UniqueActivities(ids []int) []int {
	out := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
