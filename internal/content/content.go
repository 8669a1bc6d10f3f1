package content

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

var (
	ErrEmpty         = errors.New("content is empty")
	ErrBareText      = errors.New("content must be wrapped in a block tag such as <p>")
	ErrDisallowedTag = errors.New("disallowed tag")
)

// allowedTags is the HTML subset a post body may use. Everything else is
// rejected so platform adapters never see markup they cannot render.
var allowedTags = map[string]struct{}{
	"h1": {}, "h2": {}, "h3": {},
	"u": {}, "strong": {},
	"ul": {}, "li": {},
	"p": {},
}

// Validate checks that body only uses the allowed tag subset and that no text
// sits outside a block tag, i.e. every line is paragraph-wrapped.
func Validate(body string) error {
	if strings.TrimSpace(body) == "" {
		return ErrEmpty
	}

	tz := html.NewTokenizer(strings.NewReader(body))
	depth := 0
	for {
		switch tz.Next() {
		case html.ErrorToken:
			if errors.Is(tz.Err(), io.EOF) {
				return nil
			}
			return tz.Err()
		case html.StartTagToken:
			name, _ := tz.TagName()
			if err := checkTag(string(name)); err != nil {
				return err
			}
			depth++
		case html.SelfClosingTagToken:
			name, _ := tz.TagName()
			if err := checkTag(string(name)); err != nil {
				return err
			}
		case html.EndTagToken:
			if depth > 0 {
				depth--
			}
		case html.TextToken:
			if depth == 0 && strings.TrimSpace(string(tz.Text())) != "" {
				return ErrBareText
			}
		}
	}
}

func checkTag(tag string) error {
	if _, ok := allowedTags[tag]; !ok {
		return fmt.Errorf("%w: <%s>", ErrDisallowedTag, tag)
	}
	return nil
}
