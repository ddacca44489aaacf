package sectionheader

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	// RuleUnit is the two-character sequence banners are drawn with.
	RuleUnit = "//"

	// RuleRepeat is how many times RuleUnit is repeated to form a rule line.
	RuleRepeat = 32

	// FieldWidth is the width, in runes, of the field the label is centered
	// in. It is the rule width minus a RuleUnit on each side.
	FieldWidth = RuleRepeat*len(RuleUnit) - 2*len(RuleUnit)
)

// Rule returns a rule line, without a trailing newline.
func Rule() string {
	return strings.Repeat(RuleUnit, RuleRepeat)
}

// Label joins args with a single space.
func Label(args []string) string {
	return strings.Join(args, " ")
}

// Center returns s centered in a field of width runes, padded with pad.
// When the padding cannot be split evenly, the extra pad goes on the right.
// If s is already width runes or longer it is returned unchanged.
func Center(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	total := width - n
	left := total / 2
	p := string(pad)
	return strings.Repeat(p, left) + s + strings.Repeat(p, total-left)
}

// Format returns the three-line banner for label. Every line, including the
// last, ends in a newline.
func Format(label string) string {
	rule := Rule()

	var b strings.Builder
	b.Grow(3*len(rule) + len(label) + 3)
	b.WriteString(rule)
	b.WriteByte('\n')
	b.WriteString(RuleUnit)
	b.WriteString(Center(label, FieldWidth, ' '))
	b.WriteString(RuleUnit)
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')
	return b.String()
}

// Write writes the banner for label to w.
func Write(w io.Writer, label string) error {
	if _, err := io.WriteString(w, Format(label)); err != nil {
		return errors.Wrap(err, "write banner")
	}
	return nil
}
