// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package narration

import "github.com/danielhkuo/ranked-pick/rcv"

// Transcript collects narration as plain lines without markup.
type Transcript struct {
	lines []string
}

func (t *Transcript) Narrate(e rcv.Event) {
	for _, l := range describe(e) {
		t.lines = append(t.lines, l.text)
	}
}

// Lines returns the captured lines.
func (t *Transcript) Lines() []string {
	return append([]string(nil), t.lines...)
}

type multi []rcv.Narrator

func (m multi) Narrate(e rcv.Event) {
	for _, n := range m {
		n.Narrate(e)
	}
}

// Multi fans events out to every non-nil narrator in order.
func Multi(narrators ...rcv.Narrator) rcv.Narrator {
	var m multi
	for _, n := range narrators {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}
