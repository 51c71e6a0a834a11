package asm

import (
	"slices"
	"strings"
)

// SectionID names one of the three source sections.
type SectionID int

//go:generate go tool stringer -linecomment -type=SectionID
const (
	SECTION_DEFINE = SectionID(0) // DEFINE
	SECTION_DATA   = SectionID(1) // DATA
	SECTION_CODE   = SectionID(2) // CODE
)

// Marker returns the text that opens the section.
func (id SectionID) Marker() string {
	return "___" + id.String() + "___"
}

// span locates a section, marker included, within a source text.
type span struct {
	id         SectionID
	start, end int
}

// sections finds the first marker of each section. A section extends to
// the nearest following marker or to the end of the text. Spans are
// returned in text order.
func sections(text string) (spans []span) {
	for _, id := range []SectionID{SECTION_DEFINE, SECTION_DATA, SECTION_CODE} {
		start := strings.Index(text, id.Marker())
		if start >= 0 {
			spans = append(spans, span{id: id, start: start})
		}
	}

	slices.SortFunc(spans, func(a, b span) int { return a.start - b.start })

	for n := range spans {
		if n+1 < len(spans) {
			spans[n].end = spans[n+1].start
		} else {
			spans[n].end = len(text)
		}
	}

	return
}

// findSection returns the span of a section.
func findSection(text string, id SectionID) (sp span, ok bool) {
	for _, sp = range sections(text) {
		if sp.id == id {
			return sp, true
		}
	}
	return span{}, false
}

// Section returns the body of a section: the text following the marker
// line up to the next marker or the end of the text.
func Section(text string, id SectionID) (body string, ok bool) {
	body, _, ok = sectionBody(text, id)
	return
}

// sectionBody also returns the 1-based line number of the body's first
// line within text.
func sectionBody(text string, id SectionID) (body string, lineno int, ok bool) {
	sp, ok := findSection(text, id)
	if !ok {
		return
	}

	start := sp.start + len(id.Marker())
	if strings.HasPrefix(text[start:], "\r\n") {
		start += 2
	} else if strings.HasPrefix(text[start:], "\n") {
		start++
	}
	if start > sp.end {
		start = sp.end
	}

	body = text[start:sp.end]
	lineno = strings.Count(text[:start], "\n") + 1
	return
}
