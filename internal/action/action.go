// Package action emits GitHub Actions workflow commands and step outputs.
// Outside of Actions every method is a no-op.
package action

import (
	"io"
	"os"
	"sort"

	"github.com/sethvargo/go-githubactions"
)

// Runner writes workflow commands for one process.
type Runner struct {
	enabled    bool
	outputPath string
	gh         *githubactions.Action
}

// FromEnv returns a Runner enabled when GITHUB_ACTIONS is "true". Annotations
// are written to out.
func FromEnv(out io.Writer) *Runner {
	return &Runner{
		enabled:    os.Getenv("GITHUB_ACTIONS") == "true",
		outputPath: os.Getenv("GITHUB_OUTPUT"),
		gh:         githubactions.New(githubactions.WithWriter(out)),
	}
}

// Enabled reports whether workflow commands are emitted.
func (r *Runner) Enabled() bool {
	return r != nil && r.enabled
}

// Warning emits a ::warning:: annotation.
func (r *Runner) Warning(msg string) {
	if r.Enabled() {
		r.gh.Warningf("%s", msg)
	}
}

// Error emits an ::error:: annotation.
func (r *Runner) Error(msg string) {
	if r.Enabled() {
		r.gh.Errorf("%s", msg)
	}
}

// SetOutputs records step outputs in the GITHUB_OUTPUT file, in name order.
// Without an output file nothing is written, so no legacy set-output
// command ends up on the annotation stream.
func (r *Runner) SetOutputs(outputs map[string]string) {
	if !r.Enabled() || r.outputPath == "" {
		return
	}

	names := make([]string, 0, len(outputs))
	for k := range outputs {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		r.gh.SetOutput(k, outputs[k])
	}
}
