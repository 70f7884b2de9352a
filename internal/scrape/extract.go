package scrape

import (
	"regexp"
	"strings"
)

// ContactInfo is what organizer enrichment pulls from a page: best-effort,
// either field may be empty.
type ContactInfo struct {
	Email string
	Name  string
}

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	nameRe  = regexp.MustCompile(`[A-Z][a-z]+\s+[A-Z][a-z]+`)
)

// ExtractContact scans page HTML for an organizer email and name. The email
// is the first address-looking token on the page. The name heuristic looks
// for a capitalized first-and-last-name pair within 200 characters after the
// word "contact", which matches how most event sites label their organizer
// block.
func ExtractContact(page string) ContactInfo {
	var info ContactInfo

	if m := emailRe.FindString(page); m != "" {
		info.Email = m
	}

	lower := strings.ToLower(page)
	if idx := strings.Index(lower, "contact"); idx >= 0 {
		window := page[idx:]
		if len(window) > 200 {
			window = window[:200]
		}
		if m := nameRe.FindString(window); m != "" {
			info.Name = m
		}
	}

	return info
}

// Empty reports whether extraction found nothing usable.
func (c ContactInfo) Empty() bool {
	return c.Email == "" && c.Name == ""
}
