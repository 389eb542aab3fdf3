package numbers

// wholeResult is the 4-tuple produced by parsing a single numeric phrase:
// the digit string, any trailing suffix ("'s", "th", ...), the index just
// past the last word consumed, and whether the caller may reformat the
// digit string with thousands separators.
type wholeResult struct {
	number        string
	suffix        string
	end           int
	allowReformat bool
}

// parseWhole evaluates the token span words[start:limit] as a single numeric
// phrase, folding left to right. It mirrors
// from_words_to_digits._parse_number_as_whole_value in the original tool.
//
// forceSingleUnits coerces every non-zero increment to 1; this is internal
// scaffolding used only by the delimiter search below so that width
// comparisons reflect digit count rather than magnitude, and is never
// surfaced in a final result.
func parseWhole(words []string, limit, start int, implySingleUnit, forceSingleUnits bool) wholeResult {
	onlyScale := implySingleUnit
	allowReformat := true

	var current, result int64
	var lastSuffix string
	isFinal := false
	incrementFinalReal := 0
	var scaleFinal int64
	wordIndexFinal := -1
	final := wholeResult{number: "", suffix: "", end: start, allowReformat: allowReformat}

	i := start
	for i < limit {
		info, ok := numberWords[words[i]]
		if !ok {
			break
		}

		if wordIndexFinal != -1 && isZeroWord(words[i]) {
			break
		}

		scale, increment, sfx, terminal := info.scale, info.increment, info.suffix, info.terminal
		lastSuffix = sfx
		incrementReal := increment
		if forceSingleUnits && increment != 0 {
			increment = 1
		}

		if wordIndexFinal != -1 {
			if !terminal {
				if isUnitWord(words[wordIndexFinal-1]) {
					break
				}
			}
			if scaleFinal == scale {
				if isUnitWord(words[i]) && isUnitWord(words[wordIndexFinal]) {
					if !(incrementFinalReal >= 20 && incrementReal < 10) {
						break
					}
				}
			}
		}

		if implySingleUnit && onlyScale {
			if !isScaleWord(words[i]) {
				onlyScale = false
			}
			if onlyScale && current == 0 && result == 0 {
				current = scale
				i++
				break
			}
		}

		current = current*scale + int64(increment)
		if scale > 100 {
			result += current
			current = 0
		}
		i++

		if terminal {
			final = wholeResult{
				number:        formatInt(result + current),
				suffix:        sfx,
				end:           i,
				allowReformat: allowReformat,
			}
			wordIndexFinal = i
			scaleFinal = scale
			incrementFinalReal = incrementReal
			isFinal = true
		}

		if sfx != "" {
			break
		}
	}

	if !isFinal {
		return final
	}

	return wholeResult{
		number:        formatInt(result + current),
		suffix:        lastSuffix,
		end:           i,
		allowReformat: allowReformat,
	}
}

// allowFollowOnWord permits a tens word to fuse with a following unit word,
// e.g. "twenty one" stays fused while "twenty twelve" does not.
func allowFollowOnWord(wPrev, w string) bool {
	if !isUnitWord(wPrev) || !isUnitWord(w) {
		return false
	}
	incrementPrev := numberWords[wPrev].increment
	increment := numberWords[w].increment
	return incrementPrev >= 20 && increment < 10 && increment != 0
}

// delimiterFromSeries scans forward accumulating unit segments and returns
// the index at which the phrase should end. It catches disconnected series
// of equal-width numbers, e.g. "twenty twenty and twenty twenty one" splits
// into "2020" and "2021" rather than fusing into one value.
func delimiterFromSeries(words []string, index, limit int) int {
	i := index
	spanBeg := index
	wPrev := ""
	var resultPrev, resultTest *wholeResult

	for i < limit {
		w := words[i]
		if _, ok := numberWords[w]; !ok {
			break
		}

		if i != index && allowFollowOnWord(words[i-1], w) {
			// Don't update wPrev, so "thirteen and fifty five" is not
			// delimited on the trailing "five".
		} else {
			if wPrev != "" && wPrev != "and" && isUnitWord(w) {
				resultPrev = resultTest
				r := parseWhole(words, i, spanBeg, false, true)
				resultTest = &r
				if r.end == i {
					if resultPrev != nil && len(resultPrev.number) == len(resultTest.number) {
						return resultPrev.end
					}
				}
				spanBeg = i
			}
			wPrev = w
		}
		i++
	}

	resultPrev = resultTest
	r := parseWhole(words, i, spanBeg, false, true)
	resultTest = &r
	if resultPrev != nil && len(resultPrev.number) == len(resultTest.number) {
		return resultPrev.end
	}

	return limit
}

// delimiterFromSlide scans forward looking for the point at which splitting
// produces a right-hand number no narrower than the left, preferring the
// earliest such split.
func delimiterFromSlide(words []string, index, limit int) int {
	i := index
	wPrev := ""

	for i < limit {
		w := words[i]
		if _, ok := numberWords[w]; !ok {
			break
		}

		if i != index && allowFollowOnWord(words[i-1], w) {
		} else {
			if wPrev != "" && wPrev != "and" && isUnitWord(w) {
				lhs := parseWhole(words, i, index, false, true)
				rhs := parseWhole(words, limit, i, false, true)
				if len(lhs.number) <= len(rhs.number) {
					return lhs.end
				}
			}
			wPrev = w
		}
		i++
	}

	return limit
}

// ParseNumber parses the numeric phrase beginning at words[index], first
// narrowing its extent with the two delimiter passes and then folding it
// into a value.
func ParseNumber(words []string, index int, implySingleUnit bool) (number, suffix string, end int, allowReformat bool) {
	limit := len(words)
	limit = delimiterFromSeries(words, index, limit)
	limit = delimiterFromSlide(words, index, limit)
	r := parseWhole(words, limit, index, implySingleUnit, false)
	return r.number, r.suffix, r.end, r.allowReformat
}
