package telegrampub

import "strings"

// renderContent rewrites the stored HTML subset into the fragment Telegram's
// HTML parse mode accepts: headings become bold lines, paragraphs and list
// items become plain lines, u/strong pass through.
func renderContent(body string) string {
	r := strings.NewReplacer(
		"<p>", "", "</p>", "\n",
		"<h1>", "<b>", "</h1>", "</b>\n",
		"<h2>", "<b>", "</h2>", "</b>\n",
		"<h3>", "<b>", "</h3>", "</b>\n",
		"<ul>", "", "</ul>", "",
		"<li>", "• ", "</li>", "\n",
	)
	return strings.TrimRight(r.Replace(body), "\n")
}
