package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	want := []string{
		"add", "edit", "delete", "fav", "photo", "get", "list", "favorites",
		"search", "calendar", "week", "chart", "insights", "activities", "theme",
		"reconcile", "share", "watch", "info", "mcp", "completion", "version",
	}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("expected a %q command: %v", name, err)
		}
	}
}

func TestAddThenList(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MOODLOG_PATH", filepath.Join(dir, "db"))
	t.Setenv("MOODLOG_MEDIA", filepath.Join(dir, "media"))

	run := func(args ...string) {
		t.Helper()
		root := New()
		root.SetArgs(args)
		if err := root.Execute(); err != nil {
			t.Fatalf("moodlog %v: %v", args, err)
		}
	}

	run("add", "--mood", "good", "-a", "sport", "went", "running")
	run("add", "--on", "2025-3-1", "quiet", "day")
	run("list", "--window", "1w")
	run("calendar", "--month", "2025-3")
	run("insights", "--json")

	for _, name := range []string{"journal_entries.json", "mood_entries.json", "last_selected_mood.json"} {
		if _, err := os.Stat(filepath.Join(dir, "db", name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}
}

func TestAddRejectsUnknownMood(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MOODLOG_PATH", filepath.Join(dir, "db"))
	t.Setenv("MOODLOG_MEDIA", filepath.Join(dir, "media"))

	root := New()
	root.SetArgs([]string{"add", "--mood", "ecstatic"})
	root.SilenceErrors = true
	if err := root.Execute(); err == nil {
		t.Fatalf("expected an unknown mood error")
	}
}
