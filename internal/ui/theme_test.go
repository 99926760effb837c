package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Slate",
		"Slate":    "Nightfox",
		"Unknown":  "Nightfox",
	}
	for in, want := range cases {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("Dracula").Name; got != DefaultThemeName {
		t.Fatalf("GetTheme(Dracula).Name = %q, want %s (fallback)", got, DefaultThemeName)
	}
}

func TestThemesDefineAllColors(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for field, value := range map[string]string{
			"Background":  th.Background,
			"Surface":     th.Surface,
			"SelectionBg": th.SelectionBg,
			"Text":        th.Text,
			"Accent":      th.Accent,
			"Danger":      th.Danger,
		} {
			if value == "" {
				t.Fatalf("theme %s has empty %s", name, field)
			}
		}
	}
}
