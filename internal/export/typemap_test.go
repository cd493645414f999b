package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTypeMap(t *testing.T) {
	m := DefaultTypeMap()

	tests := []struct {
		csl  string
		want string
	}{
		{"article-journal", "article"},
		{"chapter", "incollection"},
		{"webpage", "online"},
		{"post", "online"},
		{"post-weblog", "online"},
		{"paper-conference", "inproceedings"},
	}

	for _, tt := range tests {
		t.Run(tt.csl, func(t *testing.T) {
			got, ok := m.Lookup(tt.csl)
			if !ok || got != tt.want {
				t.Errorf("Lookup(%q) = %q, %v; want %q", tt.csl, got, ok, tt.want)
			}
		})
	}

	if _, ok := m.Lookup("song"); ok {
		t.Error("Lookup(song) should not be mapped")
	}
}

func TestDefaultTypeMap_IsCopy(t *testing.T) {
	m := DefaultTypeMap()
	m["webpage"] = "misc"
	if got, _ := DefaultTypeMap().Lookup("webpage"); got != "online" {
		t.Errorf("DefaultTypeMap() was mutated, webpage -> %q", got)
	}
}

func TestLoadTypeMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yml")
	content := "song: misc\nwebpage: misc\npost: \"\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadTypeMap(path)
	if err != nil {
		t.Fatalf("LoadTypeMap() error = %v", err)
	}

	if got, _ := m.Lookup("song"); got != "misc" {
		t.Errorf("song -> %q, want misc", got)
	}
	if got, _ := m.Lookup("webpage"); got != "misc" {
		t.Errorf("webpage -> %q, want override misc", got)
	}
	if _, ok := m.Lookup("post"); ok {
		t.Error("post with empty override should be unmapped")
	}
	if got, _ := m.Lookup("chapter"); got != "incollection" {
		t.Errorf("chapter -> %q, want default kept", got)
	}
}

func TestLoadTypeMap_Errors(t *testing.T) {
	if _, err := LoadTypeMap(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("LoadTypeMap() expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yml")
	os.WriteFile(path, []byte("- not\n- a map\n"), 0644)
	if _, err := LoadTypeMap(path); err == nil {
		t.Error("LoadTypeMap() expected error for non-mapping YAML")
	}
}
