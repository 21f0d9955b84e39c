package normalize

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a token for the per-token stages
type Kind uint8

const (
	// NonWordLike tokens (punctuation and whitespace runs, isolated symbols,
	// emails, domains) pass through every stage untouched
	NonWordLike Kind = iota
	// WordLike tokens are runs of letters, digits and the symbols ! @ $
	// holding at least one letter or digit; a bare "!!" is punctuation
	WordLike
)

func (k Kind) String() string {
	if k == WordLike {
		return "word"
	}
	return "other"
}

// Token is one slice of the input; concatenating every Token.Text gives the input back
type Token struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}

// emails first, then dotted host-like names (unimelb.edu.au); ASCII word classes only
var spanRE = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b|\b[\w-]+\.(?:[\w-]+\.)*[\w-]+\b`)

// Tokenize splits text into word-like and non-word-like tokens
// Priority at each position:
// 1 an email or domain span starting here is taken whole
// 2 " X " with X one of ! @ $ is one token
// 3 a digit with a space or text edge on both sides stands alone
// 4 a "!" after a non-space and before space or end is detached
// 5 a maximal run of letter-like runes is a word (al4y, $aya, abi5),
// unless it is made of symbols only
// 6 anything else runs until the next letter-like rune
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	spans := spanRE.FindAllStringIndex(text, -1)
	next := 0
	n := len(text)
	toks := make([]Token, 0, 8)

	for i := 0; i < n; {
		for next < len(spans) && spans[next][0] < i {
			next++
		}
		if next < len(spans) && spans[next][0] == i {
			end := spans[next][1]
			toks = append(toks, Token{Text: text[i:end], Kind: NonWordLike})
			i = end
			next++
			continue
		}

		if i+2 < n && text[i] == ' ' && isSymbol(text[i+1]) && text[i+2] == ' ' {
			toks = append(toks, Token{Text: text[i : i+3], Kind: NonWordLike})
			i += 3
			continue
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLetterLike(r) {
			j := i + size
			for j < n {
				rj, sz := utf8.DecodeRuneInString(text[j:])
				if isLetterLike(rj) {
					break
				}
				j += sz
			}
			toks = append(toks, Token{Text: text[i:j], Kind: NonWordLike})
			i = j
			continue
		}

		if unicode.IsDigit(r) && (i == 0 || text[i-1] == ' ') && (i+size == n || text[i+size] == ' ') {
			toks = append(toks, Token{Text: text[i : i+size], Kind: WordLike})
			i += size
			continue
		}
		if detachedBang(text, i) {
			toks = append(toks, Token{Text: "!", Kind: NonWordLike})
			i++
			continue
		}

		j := i + size
		for j < n {
			if detachedBang(text, j) {
				break
			}
			rj, sz := utf8.DecodeRuneInString(text[j:])
			if !isLetterLike(rj) {
				break
			}
			j += sz
		}
		kind := NonWordLike
		if hasAlnum(text[i:j]) {
			kind = WordLike
		}
		toks = append(toks, Token{Text: text[i:j], Kind: kind})
		i = j
	}
	return toks
}

// Words returns the token texts of Tokenize(text)
func Words(text string) []string {
	toks := Tokenize(text)
	if len(toks) == 0 {
		return nil
	}
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func isSymbol(b byte) bool { return b == '!' || b == '@' || b == '$' }

func isLetterLike(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '!' || r == '@' || r == '$'
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// detachedBang reports whether s[i] is a "!" glued to the previous rune and
// followed by whitespace or the end of s (bgt! -> bgt, !)
func detachedBang(s string, i int) bool {
	if s[i] != '!' || i == 0 {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:i])
	if unicode.IsSpace(prev) {
		return false
	}
	if i+1 == len(s) {
		return true
	}
	nextR, _ := utf8.DecodeRuneInString(s[i+1:])
	return unicode.IsSpace(nextR)
}
