package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"profilecard/config"
	"profilecard/profile"

	"golang.org/x/term"
)

// ANSI codes for the card frame
const (
	bold  = "\033[1m"
	cyan  = "\033[36m"
	reset = "\033[0m"
)

// Options controls text rendering.
type Options struct {
	// Color wraps the header and footer in ANSI emphasis
	Color bool
}

// ColorEnabled resolves a color mode against the output file.
// "auto" only colors when f is a terminal.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		return f != nil && term.IsTerminal(int(f.Fd()))
	default:
		return false
	}
}

// Text writes the profile card, one line per entry.
func Text(w io.Writer, p profile.Profile, opts Options) error {
	for _, line := range p.Lines() {
		if opts.Color && (line == profile.Header || line == profile.Footer) {
			line = bold + cyan + line + reset
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing profile: %w", err)
		}
	}
	return nil
}

// TextString renders the card without color.
func TextString(p profile.Profile) string {
	var sb strings.Builder
	// strings.Builder writes never fail
	_ = Text(&sb, p, Options{})
	return sb.String()
}

// Document is the JSON form of a profile card.
type Document struct {
	Initial    string   `json:"initial"`
	Age        int      `json:"age"`
	Height     float64  `json:"height"`
	YearsLater int      `json:"years_later"`
	FutureAge  int      `json:"future_age"`
	Tall       bool     `json:"tall"`
	Verdict    string   `json:"verdict"`
	Lines      []string `json:"lines"`
}

// NewDocument builds the JSON document for p.
func NewDocument(p profile.Profile) Document {
	return Document{
		Initial:    string(p.Initial),
		Age:        p.Age,
		Height:     p.Height,
		YearsLater: p.YearsLater,
		FutureAge:  p.FutureAge(),
		Tall:       p.IsTall(),
		Verdict:    p.Verdict(),
		Lines:      p.Lines(),
	}
}

// JSON writes the profile as an indented JSON document.
func JSON(w io.Writer, p profile.Profile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(p)); err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return nil
}
