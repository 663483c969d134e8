package detail

import (
	"strings"
	"unicode/utf8"
)

// Summary is what the quick view shows: kicker, date, title, description.
type Summary struct {
	ID          string `json:"id"`
	Kicker      string `json:"kicker"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// Document is the full reading view of a record.
type Document struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	// Meta lines such as the date or "Kevin Lynch // 1960".
	Meta []string `json:"meta"`
	Link string   `json:"link,omitempty"`
	Body string   `json:"-"`
}

// Paragraphs splits the document body.
func (d Document) Paragraphs() []string {
	return Paragraphs(d.Body)
}

// Paragraphs splits body on blank lines. Windows line endings and separator
// lines holding only whitespace count as blank; empty paragraphs are dropped.
func Paragraphs(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	var out []string
	var cur []string
	flush := func() {
		if len(cur) == 0 {
			return
		}
		p := strings.TrimSpace(strings.Join(cur, "\n"))
		if p != "" {
			out = append(out, p)
		}
		cur = cur[:0]
	}
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return out
}

// DropCap splits the first rune off the first paragraph. Both results are
// empty when there are no paragraphs.
func DropCap(paragraphs []string) (initial, remainder string) {
	if len(paragraphs) == 0 || paragraphs[0] == "" {
		return "", ""
	}
	r, size := utf8.DecodeRuneInString(paragraphs[0])
	return string(r), paragraphs[0][size:]
}
