package glyph

import "fmt"

// Glyph pairs a terminal symbol with a status key and meaning.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

// DefaultGlyphs lists the status glyphs plus the recurrence marker.
func DefaultGlyphs() []Glyph {
	return []Glyph{{
		Key:     "pending",
		Symbol:  "○",
		Meaning: "task pending",
	}, {
		Key:     "in progress",
		Symbol:  "◐",
		Meaning: "task in progress",
	}, {
		Key:     "completed",
		Symbol:  "✘",
		Meaning: "task completed",
	}, {
		Key:     "recurring",
		Symbol:  "↻",
		Meaning: "task repeats",
	}, {
		Key:     "note",
		Symbol:  "⁃",
		Meaning: "note attached",
	}}
}

// ForKey returns the glyph registered under key, or a blank glyph.
func ForKey(key string) Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Key == key {
			return g
		}
	}
	return Glyph{Key: key, Symbol: " ", Meaning: "none"}
}

func (g Glyph) String() string {
	return g.Symbol
}
