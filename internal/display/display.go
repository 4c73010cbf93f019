// Package display handles terminal output: markdown rendering, progress
// spinners and error formatting.
package display

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/glamour"
)

var renderer *glamour.TermRenderer

// InitRenderer prepares the markdown renderer. Must be called before
// ShowContentRendered; without it rendered output falls back to plain.
func InitRenderer() error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize markdown renderer: %w", err)
	}
	renderer = r
	return nil
}

// ShowContent prints assistant output as plain text.
func ShowContent(content string) {
	fmt.Println(content)
}

// ShowContentRendered prints assistant output as rendered markdown,
// falling back to plain text if the renderer is unavailable.
func ShowContentRendered(content string) {
	if renderer == nil {
		ShowContent(content)
		return
	}
	out, err := renderer.Render(content)
	if err != nil {
		ShowContent(content)
		return
	}
	fmt.Print(out)
}

// ShowError prints an error message to stderr.
func ShowError(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
}

// Spinner wraps a terminal spinner shown while waiting on the API.
type Spinner struct {
	sp *spinner.Spinner
}

// NewSpinner creates a spinner with the given message.
func NewSpinner(msg string) *Spinner {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Suffix = " " + msg
	return &Spinner{sp: sp}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.sp.Start()
}

// Stop halts the spinner and clears the line.
func (s *Spinner) Stop() {
	s.sp.Stop()
}
