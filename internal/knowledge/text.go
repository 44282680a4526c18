package knowledge

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PriceNotPublic is the only price value ever shown to the model.
const PriceNotPublic = "not_public"

// CollapseWhitespace trims v and folds every whitespace run into one space.
func CollapseWhitespace(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// Truncate collapses whitespace and cuts v to at most n runes. A cut value
// ends with "...".
func Truncate(v string, n int) string {
	v = CollapseWhitespace(v)
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(v) <= n {
		return v
	}
	if n <= 3 {
		return strings.Repeat(".", n)
	}
	runes := []rune(v)
	head := strings.TrimRight(string(runes[:n-3]), " ")
	return head + "..."
}

// FormatPriceForChat masks every stored price.
// Invalid values are rejected explicitly; valid ones are masked too.
func FormatPriceForChat(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return PriceNotPublic
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return PriceNotPublic
	}
	return PriceNotPublic
}

// StripHTML returns the visible text of an HTML fragment with whitespace
// collapsed. Plain text passes through unchanged apart from entity decoding.
func StripHTML(v string) string {
	z := html.NewTokenizer(strings.NewReader(v))
	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input: keep what was read
			return CollapseWhitespace(b.String())
		case html.StartTagToken:
			if a := tagAtom(z); a == atom.Script || a == atom.Style {
				skip++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			if a := tagAtom(z); (a == atom.Script || a == atom.Style) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func tagAtom(z *html.Tokenizer) atom.Atom {
	name, _ := z.TagName()
	return atom.Lookup(name)
}

// PageSummary prefers the stored summary. Otherwise it derives one from
// content, which is either JSON {"html": "..."} or raw HTML/text.
func PageSummary(summary, content string) string {
	if s := CollapseWhitespace(summary); s != "" {
		return s
	}
	raw := strings.TrimSpace(content)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "{") {
		var doc struct {
			HTML string `json:"html"`
		}
		if err := json.Unmarshal([]byte(raw), &doc); err == nil && strings.TrimSpace(doc.HTML) != "" {
			raw = doc.HTML
		}
	}
	return StripHTML(raw)
}
