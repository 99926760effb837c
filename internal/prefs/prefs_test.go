package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.LastQuery != "" {
		t.Fatalf("LastQuery = %q, want empty", p.LastQuery)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "bookfinder")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Slate\"\nlast_query = \"Dune\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Slate" || p.LastQuery != "Dune" {
		t.Fatalf("Prefs = %#v, want Slate/Dune", p)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: "Kanagawa", LastQuery: "Solaris"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Theme != "Kanagawa" || loaded.LastQuery != "Solaris" {
		t.Fatalf("loaded = %#v", loaded)
	}
}

func TestLoad_EmptyThemeFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_InvalidTOMLReportsErrorWithDefaults(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err == nil || !strings.Contains(err.Error(), "parse prefs") {
		t.Fatalf("Load error = %v, want parse prefs error", err)
	}
	if p.Theme != defaultTheme || p.LastQuery != "" {
		t.Fatalf("Prefs = %#v, want defaults", p)
	}
}

func TestUpdate_PreservesOtherKeys(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(prefsFile, Prefs{Theme: "Slate", LastQuery: "old"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := Update(prefsFile, func(p *Prefs) { p.LastQuery = "new" }); err != nil {
		t.Fatalf("Update: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Theme != "Slate" || p.LastQuery != "new" {
		t.Fatalf("Prefs = %#v, want Slate/new", p)
	}
}

func TestQueryMemory_RoundTrip(t *testing.T) {
	mem := QueryMemory{Path: filepath.Join(t.TempDir(), "prefs.toml")}

	got, err := mem.Recall()
	if err != nil || got != "" {
		t.Fatalf("Recall on empty = %q, %v; want empty, nil", got, err)
	}

	if err := mem.Remember("X"); err != nil {
		t.Fatalf("Remember: %v", err)
	}
	if err := mem.Remember("The Left Hand of Darkness"); err != nil {
		t.Fatalf("Remember: %v", err)
	}

	got, err = mem.Recall()
	if err != nil {
		t.Fatalf("Recall: %v", err)
	}
	if got != "The Left Hand of Darkness" {
		t.Fatalf("Recall = %q, want last remembered value", got)
	}
}

func TestQueryMemory_KeepsTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(path, Prefs{Theme: "Kanagawa"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := (QueryMemory{Path: path}).Remember("Dune"); err != nil {
		t.Fatalf("Remember: %v", err)
	}
	p, _ := Load(path)
	if p.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want Kanagawa", p.Theme)
	}
}
