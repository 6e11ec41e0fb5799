package pdfbookmark

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Roman numerals in [0, MaxRoman] are representable; 0 is written "N".
const (
	MaxRoman  = 4999
	romanZero = "N"
)

type romanPair struct {
	symbol string
	value  int
}

// romanPairs is ordered for greedy subtraction.
var romanPairs = []romanPair{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

var romanPattern = regexp.MustCompile(`^M{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

func romanValue(c byte) int {
	switch c {
	case 'M':
		return 1000
	case 'D':
		return 500
	case 'C':
		return 100
	case 'L':
		return 50
	case 'X':
		return 10
	case 'V':
		return 5
	case 'I':
		return 1
	}
	return 0
}

// RomanToArabic decodes a canonical uppercase Roman numeral.
func RomanToArabic(roman string) (int, error) {
	if roman == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidRomanNumeral)
	}
	if roman == romanZero {
		return 0, nil
	}
	if !romanPattern.MatchString(roman) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRomanNumeral, roman)
	}

	arabic := 0
	for i := 0; i < len(roman); i++ {
		v := romanValue(roman[i])
		if i+1 < len(roman) && v < romanValue(roman[i+1]) {
			arabic -= v
		} else {
			arabic += v
		}
	}
	return arabic, nil
}

// ArabicToRoman encodes n in [0, MaxRoman].
func ArabicToRoman(n int) (string, error) {
	if n < 0 || n > MaxRoman {
		return "", fmt.Errorf("%w: %d (must be in [0, %d])", ErrRomanOutOfRange, n, MaxRoman)
	}
	if n == 0 {
		return romanZero, nil
	}

	var b strings.Builder
	remain := n
	for _, p := range romanPairs {
		for remain >= p.value {
			b.WriteString(p.symbol)
			remain -= p.value
		}
	}
	return b.String(), nil
}

// LettersToArabic decodes a run of one repeated uppercase letter:
// "A"=1 ... "Z"=26, "AA"=27 ... The empty string is 0.
func LettersToArabic(letters string) (int, error) {
	if letters == "" {
		return 0, nil
	}

	letter := letters[0]
	if letter < 'A' || letter > 'Z' {
		return 0, fmt.Errorf("%w: %q must be capital letters", ErrInvalidLettersNumeral, letters)
	}
	for i := 1; i < len(letters); i++ {
		if letters[i] != letter {
			return 0, fmt.Errorf("%w: %q letters are not identical", ErrInvalidLettersNumeral, letters)
		}
	}

	return len(letters)*26 - 25 + int(letter-'A'), nil
}

// ArabicToLetters encodes n >= 0 as a repeated letter run.
func ArabicToLetters(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d (must be >= 0)", ErrLettersOutOfRange, n)
	}
	if n == 0 {
		return "", nil
	}

	letter := byte('A' + (n-1)%26)
	return strings.Repeat(string(letter), (n+25)/26), nil
}

// Format renders a displayed page number in the scheme.
func (s NumStyle) Format(n int) (string, error) {
	switch s {
	case Roman:
		return ArabicToRoman(n)
	case Letters:
		return ArabicToLetters(n)
	default:
		return strconv.Itoa(n), nil
	}
}

// Parse decodes a displayed page number in the scheme.
// Roman and Letters tokens are accepted in either case.
func (s NumStyle) Parse(token string) (int, error) {
	switch s {
	case Roman:
		return RomanToArabic(strings.ToUpper(token))
	case Letters:
		return LettersToArabic(strings.ToUpper(token))
	default:
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, fmt.Errorf("%q is not a decimal number", token)
		}
		return n, nil
	}
}
