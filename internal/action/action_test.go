package action

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunner_Disabled(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "")
	path := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", path)
	var buf bytes.Buffer
	r := FromEnv(&buf)

	r.Warning("careful")
	r.Error("broken")
	r.SetOutputs(map[string]string{"entries": "3"})
	if buf.Len() != 0 {
		t.Errorf("disabled runner wrote %q", buf.String())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("disabled runner touched GITHUB_OUTPUT, stat err = %v", err)
	}
}

func TestRunner_NilIsNoop(t *testing.T) {
	var r *Runner
	r.Warning("careful")
	r.Error("broken")
	r.SetOutputs(map[string]string{"entries": "3"})
	if r.Enabled() {
		t.Error("nil Runner reports Enabled() = true")
	}
}

func TestRunner_Commands(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	var buf bytes.Buffer
	r := FromEnv(&buf)

	r.Warning("no items found")
	r.Error("50% done\nthen failed")

	want := "::warning::no items found\n::error::50%25 done%0Athen failed\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRunner_SetOutputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	if err := os.WriteFile(path, []byte("previous=1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_OUTPUT", path)

	var buf bytes.Buffer
	r := FromEnv(&buf)
	r.SetOutputs(map[string]string{
		"pinned":  "2",
		"entries": "10",
		"path":    "refs/a.bib\nrefs/b.bib",
	})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	if !strings.HasPrefix(got, "previous=1\n") {
		t.Errorf("existing outputs not kept: %q", got)
	}
	for _, want := range []string{"entries<<", "\n10\n", "pinned<<", "\n2\n", "\nrefs/a.bib\nrefs/b.bib\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("GITHUB_OUTPUT = %q, missing %q", got, want)
		}
	}
	if strings.Index(got, "entries<<") > strings.Index(got, "pinned<<") {
		t.Errorf("outputs not in name order: %q", got)
	}
	if buf.Len() != 0 {
		t.Errorf("SetOutputs wrote to the annotation stream: %q", buf.String())
	}
}

func TestRunner_SetOutputsWithoutFile(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_OUTPUT", "")
	var buf bytes.Buffer

	FromEnv(&buf).SetOutputs(map[string]string{"entries": "1"})
	if buf.Len() != 0 {
		t.Errorf("SetOutputs wrote %q without an output file", buf.String())
	}
}
