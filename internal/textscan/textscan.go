// Package textscan finds color words inside raw string and identifier text.
package textscan

import (
	"iter"
	"regexp"
)

// Token is a whitespace-delimited word and its byte offset in the scanned
// text.
type Token struct {
	Text   string
	Offset int
}

var (
	quotedPattern = regexp.MustCompile(`"[^"]*"|'[^']*'`)
	wordPattern   = regexp.MustCompile(`(?i)^[a-z]+$`)
	colorPattern  = regexp.MustCompile(`(?i)^(?:#[a-f0-9]+|[a-z]+)$`)
)

// StripQuoted removes every '...' or "..." substring so words inside quoted
// text are never taken as live references.
func StripQuoted(text string) string {
	return quotedPattern.ReplaceAllString(text, "")
}

// Fields yields every whitespace-delimited field of text.
func Fields(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		start := -1
		for i := 0; i <= len(text); i++ {
			if i < len(text) && !isSpace(text[i]) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(Token{Text: text[start:i], Offset: start}) {
					return
				}
				start = -1
			}
		}
	}
}

// Words yields the fields that are purely alphabetic.
func Words(text string) iter.Seq[Token] {
	return matching(text, wordPattern)
}

// ColorCandidates yields the fields that are either a "#" followed by hex
// digits or purely alphabetic.
func ColorCandidates(text string) iter.Seq[Token] {
	return matching(text, colorPattern)
}

func matching(text string, re *regexp.Regexp) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for tok := range Fields(text) {
			if re.MatchString(tok.Text) && !yield(tok) {
				return
			}
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
