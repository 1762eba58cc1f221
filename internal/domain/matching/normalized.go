package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/ranking"
)

// generational suffixes ignored when comparing names.
var nameSuffixes = map[string]struct{}{
	"jr": {}, "sr": {}, "ii": {}, "iii": {}, "iv": {}, "v": {},
}

// Normalized matches names after removing diacritics, case, punctuation and
// generational suffixes. Periods and apostrophes are dropped inside a token
// ("D.J." reads as "dj") while dashes separate tokens. Containment is checked
// on whole tokens, so "Josh Allen" no longer matches "Joshua Allenby".
type Normalized struct{}

// Match implements Matcher.
func (Normalized) Match(id model.PlayerIdentity, ix *ranking.Index) (model.Match, bool, error) {
	want := normalizeName(id.DisplayName)
	return resolve(id, ix, func(entryName, _ string) (model.Confidence, bool) {
		return normalizedRule(normalizeName(entryName), want)
	})
}

func normalizedRule(entry, display string) (model.Confidence, bool) {
	if entry == "" || display == "" {
		return "", false
	}
	if entry == display {
		return model.ConfidenceExact, true
	}
	e, d := " "+entry+" ", " "+display+" "
	if strings.Contains(d, e) || strings.Contains(e, d) {
		return model.ConfidenceContained, true
	}
	return "", false
}

// joiningPunct is punctuation deleted without splitting the token.
var joiningPunct = runes.Predicate(func(r rune) bool {
	return unicode.IsPunct(r) && !unicode.Is(unicode.Pd, r)
})

// normalizeName folds s to space-separated lower-case ASCII-ish tokens.
// Transformers are stateful, so a fresh chain is built per call.
func normalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(joiningPunct), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = cases.Fold().String(folded)

	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if _, suffix := nameSuffixes[f]; suffix {
			continue
		}
		tokens = append(tokens, f)
	}
	return strings.Join(tokens, " ")
}
