package knowledge

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxTokens   = 10
	minTokenLen = 3
	// keys shorter than this only match whole tokens
	minPrefixKeyLen = 4
)

var stopWords = map[string]struct{}{
	// tr
	"ve": {}, "ile": {}, "için": {}, "icin": {}, "bir": {}, "bu": {}, "şu": {}, "da": {}, "de": {},
	"mi": {}, "mı": {}, "mu": {}, "mü": {}, "ne": {}, "nedir": {}, "nasıl": {}, "nasil": {},
	"var": {}, "yok": {}, "çok": {}, "daha": {}, "gibi": {}, "olan": {}, "olarak": {}, "ama": {},
	"veya": {}, "hangi": {}, "kaç": {}, "midir": {}, "mıdır": {}, "mısınız": {}, "misiniz": {},
	"merhaba": {}, "selam": {}, "lütfen": {}, "lutfen": {}, "teşekkürler": {}, "acaba": {},
	"bana": {}, "benim": {}, "sizin": {}, "size": {}, "hakkında": {}, "istiyorum": {},
	// en
	"the": {}, "and": {}, "for": {}, "with": {}, "what": {}, "how": {}, "are": {}, "you": {},
	"your": {}, "can": {}, "this": {}, "that": {}, "from": {}, "have": {}, "has": {}, "about": {},
	"please": {}, "hello": {}, "there": {}, "which": {}, "does": {}, "want": {}, "need": {},
}

type synonym struct {
	key  string
	adds []string
}

// Turkish domain terms and the search terms they add. Order matters: it is
// the order expansions enter the token set.
var synonyms = []synonym{
	{"iki", []string{"double", "2"}},
	{"tek", []string{"single", "1"}},
	{"çift", []string{"double"}},
	{"soğutma", []string{"cooling"}},
	{"kule", []string{"tower"}},
	{"fiyat", []string{"price", "cost"}},
	{"ücret", []string{"price", "cost"}},
	{"parça", []string{"part"}},
	{"yedek", []string{"spare"}},
	{"dolgu", []string{"fill"}},
	{"servis", []string{"service"}},
	{"bakım", []string{"maintenance"}},
	{"montaj", []string{"installation"}},
	{"kurulum", []string{"installation"}},
	{"garanti", []string{"warranty"}},
	{"teslim", []string{"delivery"}},
	{"kargo", []string{"shipping"}},
	{"iade", []string{"return", "refund"}},
	{"ürün", []string{"product"}},
	{"sipariş", []string{"order"}},
	{"kapasite", []string{"capacity"}},
	{"malzeme", []string{"material"}},
}

// Tokenize turns free text into at most 10 unique search tokens: each
// surviving word followed by its synonym expansions.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) || r == '-' {
			return r
		}
		return -1
	}, strings.ToLower(text))

	words := strings.FieldsFunc(cleaned, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})

	out := make([]string, 0, maxTokens)
	seen := make(map[string]struct{}, maxTokens)
	add := func(tok string) bool {
		if _, dup := seen[tok]; !dup {
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
		return len(out) < maxTokens
	}

	for _, w := range words {
		if utf8.RuneCountInString(w) < minTokenLen {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if !add(w) {
			return out
		}
		for _, exp := range expansions(w) {
			if !add(exp) {
				return out
			}
		}
	}
	return out
}

func expansions(word string) []string {
	var out []string
	for _, s := range synonyms {
		if word == s.key || (utf8.RuneCountInString(s.key) >= minPrefixKeyLen && strings.HasPrefix(word, s.key)) {
			out = append(out, s.adds...)
		}
	}
	return out
}
