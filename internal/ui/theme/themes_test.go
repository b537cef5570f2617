package theme

import "testing"

func TestAllThemesRegistered(t *testing.T) {
	want := []string{"dracula", "gruvbox", "nord", "tokyonight"}
	got := Available()
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Available() = %v, want %v", got, want)
		}
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("tokyonight")

	if !SetTheme("nord") {
		t.Fatal("SetTheme(nord) = false")
	}
	if CurrentName() != "nord" {
		t.Errorf("CurrentName() = %q, want nord", CurrentName())
	}
	if SetTheme("no-such-theme") {
		t.Error("SetTheme accepted unknown theme")
	}
	if CurrentName() != "nord" {
		t.Errorf("failed SetTheme changed current to %q", CurrentName())
	}
}

func TestCycleThemeVisitsAllThemes(t *testing.T) {
	defer SetTheme("tokyonight")

	SetTheme("dracula")
	seen := map[string]bool{"dracula": true}
	for i := 0; i < len(Available())-1; i++ {
		seen[CycleTheme()] = true
	}
	for _, name := range Available() {
		if !seen[name] {
			t.Errorf("cycle never reached %s", name)
		}
	}
	if CycleTheme() != "dracula" {
		t.Error("cycle did not wrap around to the start")
	}
}

func TestThemesProvideDistinctNodeColors(t *testing.T) {
	for _, name := range Available() {
		SetTheme(name)
		th := Current()
		colors := map[string]string{
			"statement": th.Statement().Dark,
			"question":  th.Question().Dark,
			"objection": th.Objection().Dark,
			"decision":  th.Decision().Dark,
		}
		seen := make(map[string]string)
		for kind, c := range colors {
			if prev, dup := seen[c]; dup {
				t.Errorf("%s: %s and %s share color %s", name, prev, kind, c)
			}
			seen[c] = kind
		}
	}
	SetTheme("tokyonight")
}
