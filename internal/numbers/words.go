package numbers

import (
	"strconv"
	"strings"
)

// Options controls ParseNumbersInWordList's output formatting.
type Options struct {
	// UseSeparator inserts thousands separators into plain cardinal numbers
	// (e.g. "1,234" instead of "1234"). Ordinals, pluralized forms and
	// fused arithmetic expressions are never reformatted.
	UseSeparator bool
	// MinValue, when set, reverts a grouped digit-pair run back to its
	// original individual tokens if the grouped value falls below it. This
	// keeps short dictated sequences ("oh one") from being glued into a
	// number nobody meant to say as one (e.g. a single dialed digit).
	MinValue *int64
	// NoSuffix drops a parsed number entirely (leaves the original words in
	// place) when it would carry a suffix such as "nd" or "'s".
	NoSuffix bool
}

// ParseNumbersInWordList rewrites spelled-out numbers in words into digit
// strings, fuses simple arithmetic expressions spoken across two numbers
// ("five point two", "three plus four"), and groups runs of short digit
// strings into a single token ("one nine eight four" -> "1984"). It returns
// a new slice; the input is not mutated.
func ParseNumbersInWordList(words []string, opts Options) []string {
	words = append([]string(nil), words...)

	i := 0
	iNumberPrev := -1

	for i < len(words) {
		if isValidDigitWord(words[i]) {
			number, suffix, iNext, allowReformat := ParseNumber(words, i, true)
			if i != iNext {
				if opts.NoSuffix && suffix != "" {
					i++
					continue
				}

				numStr := number
				if opts.UseSeparator && allowReformat {
					numStr = insertThousandsSeparators(numStr)
				}
				words = spliceReplace(words, i, iNext, []string{numStr + suffix})

				if iNumberPrev != -1 && iNumberPrev+1 != i {
					between := words[iNumberPrev+1 : i]
					if joiner, ok := fuseBetween(words[iNumberPrev], words[i], between); ok {
						words = spliceReplace(words, iNumberPrev, i+1, []string{joiner})
						i = iNumberPrev
					}
				}

				iNumberPrev = i
				i--
			}
		}
		i++
	}

	return groupDigitPairs(words, opts.MinValue)
}

// fuseBetween recognizes a short connective phrase between two already
// parsed numbers and returns the joined literal, e.g. lhs="5" rhs="2"
// between=["point"] -> "5.2".
func fuseBetween(lhs, rhs string, between []string) (string, bool) {
	switch {
	case len(between) == 1 && between[0] == "point":
		return lhs + "." + rhs, true
	case len(between) == 1 && between[0] == "minus":
		return lhs + " - " + rhs, true
	case len(between) == 1 && between[0] == "plus":
		return lhs + " + " + rhs, true
	case len(between) == 2 && between[0] == "divided" && between[1] == "by":
		return lhs + " / " + rhs, true
	case len(between) == 2 && between[0] == "multiplied" && between[1] == "by":
		return lhs + " * " + rhs, true
	case len(between) == 1 && between[0] == "times":
		return lhs + " * " + rhs, true
	case len(between) == 1 && between[0] == "modulo":
		return lhs + " % " + rhs, true
	}
	return "", false
}

// groupDigitPairs joins adjacent runs of one- or two-digit tokens into a
// single token ("nineteen" "eighty" "four" having already become "19" "80"
// "4" is instead "19" "84" after parsing pairs, then "1984" here). A snapshot
// of words taken before this pass is kept so a run can be reverted to its
// pre-grouping tokens when the grouped value is too small to be a deliberate
// year/number-sequence.
func groupDigitPairs(words []string, minValue *int64) []string {
	orig := append([]string(nil), words...)

	i := 0
	for i < len(words) {
		if isShortDigitString(words[i]) {
			j := i + 1
			for j < len(words) && isShortDigitString(words[j]) {
				j++
			}
			next := j
			if i+1 != j {
				joined := strings.Join(words[i:j], "")
				words = spliceReplace(words, i, j, []string{joined})
				orig = spliceReplace(orig, i, j, []string{joined})
				next = i + 1
			}
			if minValue != nil {
				if v, err := strconv.ParseInt(words[i], 10, 64); err == nil && v < *minValue {
					words = spliceReplace(words, i, i+1, orig[i:j])
				}
			}
			i = next
		} else {
			i++
		}
	}

	return words
}

func isShortDigitString(s string) bool {
	if s == "" || len(s) > 2 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// insertThousandsSeparators adds commas every three digits, e.g.
// "1234567" -> "1,234,567". A leading '-' is preserved.
func insertThousandsSeparators(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(s[:rem])
		b.WriteByte(',')
	}
	for k := rem; k < n; k += 3 {
		b.WriteString(s[k : k+3])
		if k+3 < n {
			b.WriteByte(',')
		}
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	return out
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// spliceReplace returns a new slice with words[i:j] replaced by repl.
func spliceReplace(words []string, i, j int, repl []string) []string {
	out := make([]string, 0, i+len(repl)+(len(words)-j))
	out = append(out, words[:i]...)
	out = append(out, repl...)
	out = append(out, words[j:]...)
	return out
}
