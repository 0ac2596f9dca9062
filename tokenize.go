package moodlex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenTester reports whether a candidate string should be kept whole.
type TokenTester func(string) bool

// Tokenizer splits text into tokens with byte offsets.
type Tokenizer interface {
	Tokenize(string) []*Token
}

// wordTokenizer splits text into words, contractions, emoticons, and
// punctuation. Case is preserved so scorers can use word shape as a signal.
type wordTokenizer struct {
	sanitizer      *strings.Replacer
	contractions   []string
	splitCases     []string
	suffixes       []string
	prefixes       []string
	emoticons      map[string]struct{}
	isUnsplittable TokenTester
}

type TokenizerOptFunc func(*wordTokenizer)

// UsingIsUnsplittable gives a function that tests whether a token should be
// kept whole instead of being split further.
func UsingIsUnsplittable(x TokenTester) TokenizerOptFunc {
	return func(t *wordTokenizer) {
		t.isUnsplittable = x
	}
}

// Use the provided sanitizer.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(t *wordTokenizer) {
		t.sanitizer = x
	}
}

// Use the provided suffixes.
func UsingSuffixes(x []string) TokenizerOptFunc {
	return func(t *wordTokenizer) {
		t.suffixes = x
	}
}

// Use the provided prefixes.
func UsingPrefixes(x []string) TokenizerOptFunc {
	return func(t *wordTokenizer) {
		t.prefixes = x
	}
}

// Use the provided set of emoticons.
func UsingEmoticons(x map[string]struct{}) TokenizerOptFunc {
	return func(t *wordTokenizer) {
		t.emoticons = x
	}
}

// Use the provided contractions.
func UsingContractions(x []string) TokenizerOptFunc {
	return func(t *wordTokenizer) {
		t.contractions = x
	}
}

// NewWordTokenizer creates the default word tokenizer.
func NewWordTokenizer(opts ...TokenizerOptFunc) Tokenizer {
	tok := &wordTokenizer{
		contractions:   contractions,
		emoticons:      emoticons,
		isUnsplittable: func(_ string) bool { return false },
		prefixes:       prefixes,
		sanitizer:      sanitizer,
		suffixes:       suffixes,
	}

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	tok.splitCases = append(tok.splitCases, tok.contractions...)

	return tok
}

func (t *wordTokenizer) isSpecial(token string) bool {
	_, found := t.emoticons[token]
	return found || t.isUnsplittable(token)
}

func (t *wordTokenizer) addToken(s string, start int, toks []*Token) []*Token {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, &Token{Text: s, Start: start, End: start + len(s)})
	}
	return toks
}

// doSplit peels prefixes, contractions, and suffixes off a whitespace-delimited
// span. Emoticons and unsplittable tokens are kept whole.
func (t *wordTokenizer) doSplit(span string, offset int) []*Token {
	tokens := []*Token{}
	suffs := []*Token{}

	last := 0
	for span != "" && utf8.RuneCountInString(span) != last {
		if t.isSpecial(span) {
			tokens = t.addToken(span, offset, tokens)
			return append(tokens, suffs...)
		}
		last = utf8.RuneCountInString(span)
		lower := strings.ToLower(span)
		if hasAnyPrefix(span, t.prefixes) {
			// Remove prefixes -- e.g., ($5 -> [(, $5].
			tokens = t.addToken(string(span[0]), offset, tokens)
			span = span[1:]
			offset++
		} else if idx := hasAnyIndex(lower, t.splitCases); idx > 0 {
			// Handle "they'll", "don't", "won't".
			//
			// they'll -> [they, 'll].
			// don't -> [do, n't].
			// A zero index means the span is itself a contraction.
			tokens = t.addToken(span[:idx], offset, tokens)
			offset += idx
			span = span[idx:]
		} else if hasAnySuffix(span, t.suffixes) {
			// Remove suffixes -- e.g., good. -> [good, .].
			start := offset + len(span) - 1
			suffs = append([]*Token{
				{Text: string(span[len(span)-1]), Start: start, End: start + 1}},
				suffs...)
			span = span[:len(span)-1]
		} else {
			tokens = t.addToken(span, offset, tokens)
			break
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits text into a slice of tokens with position tracking.
func (t *wordTokenizer) Tokenize(text string) []*Token {
	var tokens []*Token

	clean := t.sanitizer.Replace(text)

	start, index := 0, 0
	white := false
	for index <= len(clean) {
		uc, size := utf8.DecodeRuneInString(clean[index:])
		if size == 0 {
			break
		} else if index == 0 {
			white = unicode.IsSpace(uc)
		}
		if unicode.IsSpace(uc) != white {
			if start < index {
				tokens = append(tokens, t.doSplit(clean[start:index], start)...)
			}
			if uc == ' ' {
				start = index + 1
			} else {
				start = index
			}
			white = !white
		}
		index += size
	}

	if start < index {
		tokens = append(tokens, t.doSplit(clean[start:index], start)...)
	}

	return tokens
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func hasAnyIndex(s string, cases []string) int {
	for _, c := range cases {
		idx := strings.Index(s, c)
		if idx >= 0 {
			return idx
		}
	}
	return -1
}

var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")
var contractions = []string{"'ll", "'s", "'re", "'m", "n't", "'ve", "'d"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"$", "(", `"`, "["}

// emoticons are kept whole by the tokenizer so the valence lexicon can
// score them directly.
var emoticons = map[string]struct{}{
	"(-:":   {},
	"(:":    {},
	"(=":    {},
	":(":    {},
	":((":   {},
	":)":    {},
	":))":   {},
	":-(":   {},
	":-)":   {},
	":-*":   {},
	":-/":   {},
	":-D":   {},
	":-P":   {},
	":-|":   {},
	":/":    {},
	":D":    {},
	":P":    {},
	":'(":   {},
	":')":   {},
	":|":    {},
	";)":    {},
	";-)":   {},
	"</3":   {},
	"<3":    {},
	"=(":    {},
	"=)":    {},
	"=D":    {},
	"D:":    {},
	"XD":    {},
	"^_^":   {},
	"-__-":  {},
	"o_O":   {},
	"o_o":   {},
	"T_T":   {},
}
