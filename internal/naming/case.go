package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// apostrophes are removed before splitting so "don't" stays one word.
var apostrophes = strings.NewReplacer("'", "", "’", "")

// ligatures covers Latin letters that have no canonical decomposition.
var ligatures = strings.NewReplacer(
	"Æ", "Ae", "æ", "ae", "Œ", "Oe", "œ", "oe", "Ø", "O", "ø", "o",
	"Ð", "D", "ð", "d", "Đ", "D", "đ", "d", "Ł", "L", "ł", "l",
	"Þ", "Th", "þ", "th", "ß", "ss", "ſ", "s",
)

// Deburr converts Latin letters with diacritics to basic Latin letters
// ("Crème Brûlée" -> "Creme Brulee").
func Deburr(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return ligatures.Replace(out)
}

// Words splits s into words the way lodash case functions do: the input is
// deburred, then cut into runs of letters and digits, broken at
// lower-to-upper transitions, letter/digit boundaries, and before the last
// capital of an acronym followed by a lowercase letter ("XMLHttp"). Ordinals
// such as "1st" or "22ND" stay whole.
func Words(s string) []string {
	rs := []rune(apostrophes.Replace(Deburr(s)))

	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if isASCIIDigit(r) && (len(cur) == 0 || !isASCIIDigit(cur[len(cur)-1])) {
			if end := ordinalEnd(rs, i); end > 0 {
				flush()
				words = append(words, string(rs[i:end]))
				i = end - 1
				continue
			}
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsDigit(r) != unicode.IsDigit(prev):
				flush()
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
				i+1 < len(rs) && unicode.IsLower(rs[i+1]):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	return words
}

// ordinalEnd reports where an ordinal starting at rs[start] ends, or 0 when
// the digits there are not an ordinal. The suffix must agree with the last
// digit (1st, 2nd, 3rd, otherwise th), use a single case, and be followed by a
// word boundary, an underscore, or a letter of the other case.
func ordinalEnd(rs []rune, start int) int {
	i := start
	for i < len(rs) && isASCIIDigit(rs[i]) {
		i++
	}
	if i+2 > len(rs) {
		return 0
	}

	want := "th"
	switch rs[i-1] {
	case '1':
		want = "st"
	case '2':
		want = "nd"
	case '3':
		want = "rd"
	}

	suffix := string(rs[i : i+2])
	var lower bool
	switch suffix {
	case want:
		lower = true
	case strings.ToUpper(want):
	default:
		return 0
	}

	end := i + 2
	if end == len(rs) {
		return end
	}
	next := rs[end]
	switch {
	case !isASCIIWord(next), next == '_':
		return end
	case lower && next >= 'A' && next <= 'Z':
		return end
	case !lower && next >= 'a' && next <= 'z':
		return end
	}
	return 0
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isASCIIWord(r rune) bool {
	return isASCIIDigit(r) || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// KebabCase converts s to lowercase words joined by dashes ("My Cool App" -> "my-cool-app").
func KebabCase(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// CamelCase converts s to camelCase ("pmo-restaurant-list" -> "pmoRestaurantList").
func CamelCase(s string) string {
	title := cases.Title(language.Und)

	var b strings.Builder
	for i, w := range Words(s) {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(title.String(strings.ToLower(w)))
	}
	return b.String()
}

// UpperFirst upper-cases the first rune of s and leaves the rest untouched.
func UpperFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
