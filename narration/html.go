// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package narration

import (
	"fmt"
	"html"
	"io"

	"github.com/danielhkuo/ranked-pick/rcv"
)

// HTML writes narration as an HTML fragment. Candidate and election names
// are escaped.
type HTML struct {
	w   io.Writer
	err error
}

func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

// Err returns the first write error, if any.
func (h *HTML) Err() error {
	return h.err
}

func (h *HTML) Narrate(e rcv.Event) {
	for _, l := range describe(e) {
		text := html.EscapeString(l.text)
		switch l.style {
		case title:
			h.printf("<h2>%s</h2>\n", text)
		case heading:
			h.printf("<h3>%s</h3>\n", text)
		case verdict:
			h.printf("<p><strong>%s</strong></p>\n", text)
		default:
			h.printf("%s<br />\n", text)
		}
	}
}

func (h *HTML) printf(format string, args ...any) {
	if h.err != nil {
		return
	}
	_, h.err = fmt.Fprintf(h.w, format, args...)
}
