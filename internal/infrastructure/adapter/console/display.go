package console

import (
	"io"

	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
)

// LineReader is the subset of *readline.Instance the console drives
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Refresh()
	Stdout() io.Writer
	Close() error
}

// PromptDisplay renders ticking values into the readline prompt so typing is never interrupted
type PromptDisplay struct {
	rl    LineReader
	label string
}

var _ coreport.Display = (*PromptDisplay)(nil)

// NewPromptDisplay creates a display that prefixes every value with label
func NewPromptDisplay(rl LineReader, label string) *PromptDisplay {
	return &PromptDisplay{rl: rl, label: label}
}

// Render replaces the prompt with the labelled value
func (d *PromptDisplay) Render(text string) {
	d.rl.SetPrompt("[" + d.label + " " + text + "] ")
	d.rl.Refresh()
}
