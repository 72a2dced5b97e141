package digest

import (
	"fmt"
	"strings"
)

// RenderOptions carries the two presentation knobs of the digest email.
type RenderOptions struct {
	// SubscriptionsURL is the page where users manage their saved searches.
	SubscriptionsURL string
	// SignOff closes the email, e.g. "The Lingua Team".
	SignOff string
}

// RenderSubject lists every keyword of the digest, quoted and
// comma-joined, in section order. No deduplication, no truncation.
func RenderSubject(keywords []string) string {
	return "New articles for '" + strings.Join(keywords, "','") + "'"
}

// RenderBody produces the plain-text body of one digest email. Lines are
// CRLF-separated; each article renders as an HTML anchor so mail clients
// that interpret markup show clickable titles.
func RenderBody(d *UserDigest, opts RenderOptions) string {
	keywords := d.Keywords()

	searchWord := "search"
	if len(keywords) > 1 {
		searchWord = "searches"
	}

	body := strings.Join([]string{
		"Hi there,",
		" ",
		"There are new articles related to your subscribed " + searchWord +
			". You can find your subscriptions here: " + opts.SubscriptionsURL,
		" ",
	}, "\r\n")

	for _, keyword := range keywords {
		lines := []string{" ", fmt.Sprintf("Search: '%s': ", keyword)}
		for _, a := range d.Articles(keyword) {
			lines = append(lines, fmt.Sprintf(`- <a href="%s">%s</a>`, a.URL, a.Title))
		}
		body += strings.Join(lines, "\r\n") + "\n"
	}

	body += strings.Join([]string{
		" ",
		" ",
		"Cheers,",
		opts.SignOff,
	}, "\r\n")

	return body
}
