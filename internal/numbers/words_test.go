package numbers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumbersInWordList_SimpleCardinal(t *testing.T) {
	got := ParseNumbersInWordList([]string{"I", "have", "twenty", "five", "dollars"}, Options{})
	assert.Equal(t, []string{"I", "have", "25", "dollars"}, got)
}

func TestParseNumbersInWordList_Ordinal(t *testing.T) {
	got := ParseNumbersInWordList([]string{"the", "second", "one"}, Options{})
	assert.Equal(t, []string{"the", "2nd", "1"}, got)
}

func TestParseNumbersInWordList_DigitPairGrouping(t *testing.T) {
	got := ParseNumbersInWordList([]string{"the", "year", "nineteen", "eighty", "four"}, Options{})
	assert.Equal(t, []string{"the", "year", "1984"}, got)
}

func TestParseNumbersInWordList_DigitPairGroupingSeriesSplitsOnDelimiter(t *testing.T) {
	got := ParseNumbersInWordList([]string{"twenty", "twenty", "and", "twenty", "twenty", "one"}, Options{})
	assert.Equal(t, []string{"2020", "and", "2021"}, got)
}

func TestParseNumbersInWordList_LargeScaleFold(t *testing.T) {
	got := ParseNumbersInWordList([]string{"one", "thousand", "two", "hundred", "thirty", "four"}, Options{})
	assert.Equal(t, []string{"1234"}, got)
}

func TestParseNumbersInWordList_UseSeparator(t *testing.T) {
	got := ParseNumbersInWordList([]string{"one", "thousand", "two", "hundred", "thirty", "four"}, Options{UseSeparator: true})
	assert.Equal(t, []string{"1,234"}, got)
}

func TestParseNumbersInWordList_DecimalFusion(t *testing.T) {
	got := ParseNumbersInWordList([]string{"five", "point", "two"}, Options{})
	assert.Equal(t, []string{"5.2"}, got)
}

func TestParseNumbersInWordList_ArithmeticFusion(t *testing.T) {
	cases := []struct {
		words []string
		want  string
	}{
		{[]string{"three", "plus", "four"}, "3 + 4"},
		{[]string{"three", "minus", "four"}, "3 - 4"},
		{[]string{"nine", "divided", "by", "three"}, "9 / 3"},
		{[]string{"nine", "multiplied", "by", "three"}, "9 * 3"},
		{[]string{"nine", "times", "three"}, "9 * 3"},
		{[]string{"nine", "modulo", "three"}, "9 % 3"},
	}
	for _, c := range cases {
		got := ParseNumbersInWordList(c.words, Options{})
		assert.Equal(t, []string{c.want}, got, c.words)
	}
}

func TestParseNumbersInWordList_NoSuffixDropsOrdinal(t *testing.T) {
	got := ParseNumbersInWordList([]string{"the", "second", "place"}, Options{NoSuffix: true})
	assert.Equal(t, []string{"the", "second", "place"}, got)
}

func TestParseNumbersInWordList_MinValueRevertsShortRun(t *testing.T) {
	min := int64(100)
	got := ParseNumbersInWordList([]string{"call", "one", "two"}, Options{MinValue: &min})
	assert.Equal(t, []string{"call", "1", "2"}, got)
}

func TestParseNumbersInWordList_NonNumericPassthrough(t *testing.T) {
	got := ParseNumbersInWordList([]string{"hello", "world"}, Options{})
	assert.Equal(t, []string{"hello", "world"}, got)
}
