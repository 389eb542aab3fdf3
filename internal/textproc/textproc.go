// Package textproc applies the post-recognition text shaping that happens
// before text reaches a typing sink: newline stripping, number parsing, and
// optional sentence capitalization.
//
// Grounded on process_text() in the original tool.
package textproc

import (
	"strings"

	"github.com/prism-zip/prism-dictation/internal/numbers"
)

// Options mirrors the begin subcommand's text-shaping flags.
type Options struct {
	FullSentence        bool
	NumbersAsDigits     bool
	NumbersUseSeparator bool
	NumbersMinValue     *int64
	NumbersNoSuffix     bool
}

// Process shapes text according to opts. It never introduces a newline,
// since a typing sink would interpret one as pressing Return.
func Process(text string, opts Options) string {
	text = strings.ReplaceAll(text, "\n", " ")
	words := strings.Split(text, " ")

	if opts.NumbersAsDigits {
		words = numbers.ParseNumbersInWordList(words, numbers.Options{
			UseSeparator: opts.NumbersUseSeparator,
			MinValue:     opts.NumbersMinValue,
			NoSuffix:     opts.NumbersNoSuffix,
		})
	}

	if opts.FullSentence && len(words) > 0 {
		words[0] = capitalize(words[0])
		// No other word is changed; the last word is left as it is unless
		// it is also the first.
	}

	return strings.Join(words, " ")
}

// capitalize mirrors Python's str.capitalize(): the first character is
// upper-cased, the remainder is lower-cased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
