package profanity

import (
	_ "embed"
	"errors"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

const (
	DEFAULT_CENSOR_CHAR = '*'
	DEFAULT_MASK_LENGTH = 4
)

//go:embed data/words.txt
var defaultWordList string

var ErrEmptyWordList = errors.New("no words have been found")

var nonSpacingMarks = runes.In(unicode.Mn)

type Filter struct {
	matcher    *goahocorasick.Machine
	censorChar rune
	maskLength int
}

type Match struct {
	Start int // rune offset in the original text
	End   int // exclusive
	Word  string
}

type TextMapping struct {
	Normalized []rune
	OrigIdx    []int
}

// DefaultWords returns the embedded word list.
func DefaultWords() []string {
	return lo.Compact(lo.Map(strings.Split(defaultWordList, "\n"), func(w string, _ int) string {
		return strings.TrimSpace(w)
	}))
}

func NewDefaultFilter(censorChar rune, maskLength int) (*Filter, error) {
	return NewFilter(DefaultWords(), censorChar, maskLength)
}

// NewFilter builds the automaton over the normalized word list. A maskLength
// of 0 masks each censored rune individually.
func NewFilter(words []string, censorChar rune, maskLength int) (*Filter, error) {
	patterns := lo.UniqBy(
		lo.Filter(lo.Map(words, func(w string, _ int) []rune {
			return normalizeRunes([]rune(w))
		}), func(p []rune, _ int) bool {
			return len(p) > 0
		}),
		func(p []rune) string { return string(p) },
	)
	if len(patterns) == 0 {
		return nil, ErrEmptyWordList
	}
	sort.Slice(patterns, func(i, j int) bool {
		return string(patterns[i]) < string(patterns[j])
	})

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Filter{matcher: m, censorChar: censorChar, maskLength: maskLength}, nil
}

func (f *Filter) ContainsProfanity(text string) bool {
	return len(f.Matches(text)) > 0
}

// Censor replaces every whole-word match with the mask.
func (f *Filter) Censor(text string) string {
	matches := f.Matches(text)
	if len(matches) == 0 {
		return text
	}

	origRunes := []rune(text)
	var sb strings.Builder
	prev := 0
	for _, match := range matches {
		sb.WriteString(string(origRunes[prev:match.Start]))
		sb.WriteString(f.mask(match.End - match.Start))
		prev = match.End
	}
	sb.WriteString(string(origRunes[prev:]))

	return sb.String()
}

// Matches returns non-overlapping whole-word hits ordered by position,
// preferring the longest hit at a given start.
func (f *Filter) Matches(text string) []Match {
	mapping := normalize(text)
	if len(mapping.Normalized) == 0 {
		return nil
	}

	origRunes := []rune(text)
	var candidates []Match
	for _, span := range f.matcher.MultiPatternSearch(mapping.Normalized, false) {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.OrigIdx) {
			continue
		}

		origStart := mapping.OrigIdx[normStart]
		origEnd := mapping.OrigIdx[normEnd-1] + 1
		if !isWordBoundary(origRunes, origStart-1) || !isWordBoundary(origRunes, origEnd) {
			continue
		}

		candidates = append(candidates, Match{Start: origStart, End: origEnd, Word: string(span.Word)})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Start != candidates[j].Start {
			return candidates[i].Start < candidates[j].Start
		}
		return candidates[i].End > candidates[j].End
	})

	var matches []Match
	lastEnd := -1
	for _, c := range candidates {
		if c.Start < lastEnd {
			continue
		}
		matches = append(matches, c)
		lastEnd = c.End
	}
	return matches
}

func (f *Filter) mask(runeCount int) string {
	n := f.maskLength
	if n <= 0 {
		n = runeCount
	}
	return strings.Repeat(string(f.censorChar), n)
}

func isWordBoundary(text []rune, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	return !isWordRune(text[i])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// WORD_SEPARATOR stands in for a run of whitespace so that hits never join
// letters from different words.
const WORD_SEPARATOR = ' '

// normalize skips noise runes, collapses whitespace runs to WORD_SEPARATOR
// and tracks where every kept rune came from.
func normalize(input string) TextMapping {
	origRunes := []rune(input)
	normalized := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		if unicode.IsSpace(r) {
			if n := len(normalized); n > 0 && normalized[n-1] != WORD_SEPARATOR {
				normalized = append(normalized, WORD_SEPARATOR)
				origIdx = append(origIdx, i)
			}
			continue
		}
		clean := simplifyRune(r, nextRune(origRunes, i))
		if isNoise(clean) {
			continue
		}
		normalized = append(normalized, clean)
		origIdx = append(origIdx, i)
	}
	return TextMapping{Normalized: normalized, OrigIdx: origIdx}
}

// normalizeRunes folds a word list entry the same way, without a trailing
// separator.
func normalizeRunes(input []rune) []rune {
	normalized := normalize(string(input)).Normalized
	for len(normalized) > 0 && normalized[len(normalized)-1] == WORD_SEPARATOR {
		normalized = normalized[:len(normalized)-1]
	}
	return normalized
}

func nextRune(text []rune, i int) rune {
	if i+1 < len(text) {
		return text[i+1]
	}
	return utf8.RuneError
}

// simplifyRune folds leet speak and accents and lowercases. '!' and '|' only
// stand for 'i' inside a word so trailing punctuation stays punctuation.
func simplifyRune(r, next rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1':
		return 'i'
	case '!', '|':
		if isWordRune(next) {
			return 'i'
		}
		return r
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	}
	return unicode.ToLower(stripAccent(r))
}

func stripAccent(r rune) rune {
	if r < utf8.RuneSelf {
		return r
	}
	decomposed := []rune(norm.NFD.String(string(r)))
	if len(decomposed) < 2 {
		return r
	}
	for _, mark := range decomposed[1:] {
		if !nonSpacingMarks.Contains(mark) {
			return r
		}
	}
	return decomposed[0]
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
