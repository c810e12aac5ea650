// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package narration

import (
	"fmt"
	"io"

	"github.com/danielhkuo/ranked-pick/rcv"
)

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// Text writes Markdown-style narration.
type Text struct {
	w        io.Writer
	emphasis bool
	err      error
}

func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// WithEmphasis renders the final verdict in bold terminal escapes instead of
// Markdown asterisks.
func (t *Text) WithEmphasis(on bool) *Text {
	t.emphasis = on
	return t
}

// Err returns the first write error, if any.
func (t *Text) Err() error {
	return t.err
}

func (t *Text) Narrate(e rcv.Event) {
	for _, l := range describe(e) {
		switch l.style {
		case title:
			t.printf("## %s\n", l.text)
		case heading:
			t.printf("\n### %s\n", l.text)
		case verdict:
			if t.emphasis {
				t.printf("\n%s%s%s\n", ansiBold, l.text, ansiReset)
			} else {
				t.printf("\n**%s**\n", l.text)
			}
		default:
			t.printf("%s\n", l.text)
		}
	}
}

func (t *Text) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}
