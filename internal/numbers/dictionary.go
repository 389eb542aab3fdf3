// Package numbers rewrites English number phrases into digit strings.
//
// It is a direct port of the words-to-digits algorithm used by the original
// prism-dictation tool: a dictionary mapping number words to a
// (scale, increment, suffix, terminal) tuple, a two-pass phrase boundary
// search (series delimiter + slide delimiter), and a single left-to-right
// evaluator fold. The package holds no state once its tables are built and
// performs no recursion.
package numbers

// wordInfo is the 4-tuple associated with every recognized number word.
//
//   - scale: 1 for unit/ten words, 10^k for scale words ("hundred", ...).
//   - increment: 0..19 for units, 20/30/.../90 for tens, 0 for scales.
//   - suffix: "" for cardinals, "'s" for plurals, an ordinal suffix otherwise.
//   - terminal: false only for the connective "and".
type wordInfo struct {
	scale     int64
	increment int
	suffix    string
	terminal  bool
}

var (
	numberWords     map[string]wordInfo
	validDigitWords map[string]struct{}
	validUnitWords  map[string]struct{}
	validScaleWords map[string]struct{}
	validZeroWords  map[string]struct{}
)

type wordForm struct {
	word   string
	suffix string
}

func init() {
	numberWords = make(map[string]wordInfo)
	validDigitWords = make(map[string]struct{})
	validUnitWords = make(map[string]struct{})
	validScaleWords = make(map[string]struct{})
	validZeroWords = make(map[string]struct{})

	// Units 0..19: (cardinal, plural, ordinal).
	units := [][3]wordForm{
		{{"zero", ""}, {"zeroes", "'s"}, {"zeroth", "th"}},
		{{"one", ""}, {"ones", "'s"}, {"first", "st"}},
		{{"two", ""}, {"twos", "'s"}, {"second", "nd"}},
		{{"three", ""}, {"threes", "'s"}, {"third", "rd"}},
		{{"four", ""}, {"fours", "'s"}, {"fourth", "th"}},
		{{"five", ""}, {"fives", "'s"}, {"fifth", "th"}},
		{{"six", ""}, {"sixes", "'s"}, {"sixth", "th"}},
		{{"seven", ""}, {"sevens", "'s"}, {"seventh", "th"}},
		{{"eight", ""}, {"eights", "'s"}, {"eighth", "th"}},
		{{"nine", ""}, {"nines", "'s"}, {"ninth", "th"}},
		{{"ten", ""}, {"tens", "'s"}, {"tenth", "th"}},
		{{"eleven", ""}, {"elevens", "'s"}, {"eleventh", "th"}},
		{{"twelve", ""}, {"twelves", "'s"}, {"twelfth", "th"}},
		{{"thirteen", ""}, {"thirteens", "'s"}, {"thirteenth", "th"}},
		{{"fourteen", ""}, {"fourteens", "'s"}, {"fourteenth", "th"}},
		{{"fifteen", ""}, {"fifteens", "'s"}, {"fifteenth", "th"}},
		{{"sixteen", ""}, {"sixteens", "'s"}, {"sixteenth", "th"}},
		{{"seventeen", ""}, {"seventeens", "'s"}, {"seventeenth", "th"}},
		{{"eighteen", ""}, {"eighteens", "'s"}, {"eighteenth", "th"}},
		{{"nineteen", ""}, {"nineteens", "'s"}, {"nineteenth", "th"}},
	}

	// Tens 20..90 (index*10); indices 0 and 1 are placeholders (never used).
	unitsTens := [][3]wordForm{
		{{"", ""}, {"", ""}, {"", ""}},
		{{"", ""}, {"", ""}, {"", ""}},
		{{"twenty", ""}, {"twenties", "'s"}, {"twentieth", "th"}},
		{{"thirty", ""}, {"thirties", "'s"}, {"thirtieth", "th"}},
		{{"forty", ""}, {"forties", "'s"}, {"fortieth", "th"}},
		{{"fifty", ""}, {"fifties", "'s"}, {"fiftieth", "th"}},
		{{"sixty", ""}, {"sixties", "'s"}, {"sixtieth", "th"}},
		{{"seventy", ""}, {"seventies", "'s"}, {"seventieth", "th"}},
		{{"eighty", ""}, {"eighties", "'s"}, {"eightieth", "th"}},
		{{"ninety", ""}, {"nineties", "'s"}, {"ninetieth", "th"}},
	}

	type scaleEntry struct {
		forms [3]wordForm
		power int
	}

	scales := []scaleEntry{
		{[3]wordForm{{"hundred", ""}, {"hundreds", "s"}, {"hundredth", "th"}}, 2},
		{[3]wordForm{{"thousand", ""}, {"thousands", "s"}, {"thousandth", "th"}}, 3},
		{[3]wordForm{{"million", ""}, {"millions", "s"}, {"millionth", "th"}}, 6},
		{[3]wordForm{{"billion", ""}, {"billions", "s"}, {"billionth", "th"}}, 9},
		{[3]wordForm{{"trillion", ""}, {"trillions", "s"}, {"trillionth", "th"}}, 12},
		{[3]wordForm{{"quadrillion", ""}, {"quadrillions", "s"}, {"quadrillionth", "th"}}, 15},
		{[3]wordForm{{"quintillion", ""}, {"quintillions", "s"}, {"quintillionth", "th"}}, 18},
		{[3]wordForm{{"sextillion", ""}, {"sextillions", "s"}, {"sextillionth", "th"}}, 21},
		{[3]wordForm{{"septillion", ""}, {"septillions", "s"}, {"septillionth", "th"}}, 24},
		{[3]wordForm{{"octillion", ""}, {"octillions", "s"}, {"octillionth", "th"}}, 27},
		{[3]wordForm{{"nonillion", ""}, {"nonillions", "s"}, {"nonillionth", "th"}}, 30},
		{[3]wordForm{{"decillion", ""}, {"decillions", "s"}, {"decillionth", "th"}}, 33},
		{[3]wordForm{{"undecillion", ""}, {"undecillions", "s"}, {"undecillionth", "th"}}, 36},
		{[3]wordForm{{"duodecillion", ""}, {"duodecillions", "s"}, {"duodecillionth", "th"}}, 39},
		{[3]wordForm{{"tredecillion", ""}, {"tredecillions", "s"}, {"tredecillionth", "th"}}, 42},
		{[3]wordForm{{"quattuordecillion", ""}, {"quattuordecillions", "s"}, {"quattuordecillionth", "th"}}, 45},
		{[3]wordForm{{"quindecillion", ""}, {"quindecillions", "s"}, {"quindecillionth", "th"}}, 48},
		{[3]wordForm{{"sexdecillion", ""}, {"sexdecillions", "s"}, {"sexdecillionth", "th"}}, 51},
		{[3]wordForm{{"septendecillion", ""}, {"septendecillions", "s"}, {"septendecillionth", "th"}}, 54},
		{[3]wordForm{{"octodecillion", ""}, {"octodecillions", "s"}, {"octodecillionth", "th"}}, 57},
		{[3]wordForm{{"novemdecillion", ""}, {"novemdecillions", "s"}, {"novemdecillionth", "th"}}, 60},
		{[3]wordForm{{"vigintillion", ""}, {"vigintillions", "s"}, {"vigintillionth", "th"}}, 63},
		{[3]wordForm{{"centillion", ""}, {"centillions", "s"}, {"centillionth", "th"}}, 303},
	}

	// "and" is a permitted connective: scale=1, increment=0, non-terminal.
	numberWords["and"] = wordInfo{scale: 1, increment: 0, suffix: "", terminal: false}

	for idx, forms := range units {
		for _, f := range forms {
			numberWords[f.word] = wordInfo{scale: 1, increment: idx, suffix: f.suffix, terminal: true}
		}
	}
	for idx, forms := range unitsTens {
		for _, f := range forms {
			if f.word == "" {
				continue
			}
			numberWords[f.word] = wordInfo{scale: 1, increment: idx * 10, suffix: f.suffix, terminal: true}
		}
	}
	for _, se := range scales {
		scaleValue := pow10(se.power)
		for _, f := range se.forms {
			numberWords[f.word] = wordInfo{scale: scaleValue, increment: 0, suffix: f.suffix, terminal: true}
		}
		for _, f := range se.forms {
			validScaleWords[f.word] = struct{}{}
		}
	}

	for _, forms := range units {
		for _, f := range forms {
			validUnitWords[f.word] = struct{}{}
		}
	}
	for _, forms := range unitsTens {
		for _, f := range forms {
			if f.word == "" {
				continue
			}
			validUnitWords[f.word] = struct{}{}
		}
	}

	for _, f := range units[0] {
		validZeroWords[f.word] = struct{}{}
	}

	for w := range numberWords {
		if w == "and" {
			continue
		}
		validDigitWords[w] = struct{}{}
	}
}

func pow10(power int) int64 {
	v := int64(1)
	for i := 0; i < power; i++ {
		v *= 10
	}
	return v
}

func isValidDigitWord(w string) bool {
	_, ok := validDigitWords[w]
	return ok
}

func isUnitWord(w string) bool {
	_, ok := validUnitWords[w]
	return ok
}

func isScaleWord(w string) bool {
	_, ok := validScaleWords[w]
	return ok
}

func isZeroWord(w string) bool {
	_, ok := validZeroWords[w]
	return ok
}
