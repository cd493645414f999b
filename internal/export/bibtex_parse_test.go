package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseBibTeX(t *testing.T) {
	bib := `@article{Smith2020,
  title = {A},
}

@online{Smith2020,
  title = {B},
}

@Book{Doe2019,
  title = {C},
}
`
	idx := ParseBibTeX(bib)

	if idx.Entries != 3 {
		t.Errorf("Entries = %d, want 3", idx.Entries)
	}
	if idx.Keys["Doe2019"] != 1 || idx.Keys["Smith2020"] != 2 {
		t.Errorf("Keys = %v", idx.Keys)
	}
	if idx.Types["book"] != 1 || idx.Types["article"] != 1 {
		t.Errorf("Types = %v", idx.Types)
	}

	dups := idx.Duplicates()
	if len(dups) != 1 || dups[0] != "Smith2020" {
		t.Errorf("Duplicates() = %v, want [Smith2020]", dups)
	}
}

func TestParseBibTeX_Empty(t *testing.T) {
	idx := ParseBibTeX("")
	if idx.Entries != 0 || len(idx.Duplicates()) != 0 {
		t.Errorf("empty text gave %+v", idx)
	}
}

func TestParseBibTeX_LongLine(t *testing.T) {
	abstract := strings.Repeat("word ", 400*1024)
	bib := "@article{Long2024,\n  abstract = {" + abstract + "},\n}\n\n@misc{After,\n}\n"

	idx := ParseBibTeX(bib)
	if idx.Entries != 2 || idx.Keys["After"] != 1 {
		t.Errorf("ParseBibTeX() = %+v, want both entries", idx)
	}
}

func TestWriteBibFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "references.bib")
	content := "@article{Müller2021,\n  author = {Müller, Zoë},\n}\n"

	if err := WriteBibFile(path, content); err != nil {
		t.Fatalf("WriteBibFile() error = %v", err)
	}
	if err := WriteBibFile(path, content); err != nil {
		t.Fatalf("WriteBibFile() overwrite error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("file content = %q, want %q", got, content)
	}
}
