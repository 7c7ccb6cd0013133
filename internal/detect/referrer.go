package detect

import (
	"net/url"
	"strings"

	"github.com/tmash55/Linkty/internal/model"
)

// Fixed domain keyword lists for referrer classification. Matching is a
// case-insensitive substring check against the referrer hostname. Search is
// checked before email, so yahoo mail hosts classify as search_engine.
var (
	searchDomains = []string{"google", "bing", "yahoo", "duckduckgo", "baidu"}
	socialDomains = []string{"facebook", "twitter", "linkedin", "instagram", "pinterest", "tiktok"}
	videoDomains  = []string{"youtube", "vimeo", "dailymotion"}
	emailDomains  = []string{"gmail", "outlook", "yahoo", "protonmail"}
)

// ClassifyReferrer maps a raw Referer header onto the referrer taxonomy.
// An absent header is direct; a header that does not parse as a URL with a
// hostname is invalid; a parseable host outside every keyword list is other.
func ClassifyReferrer(raw string) string {
	if raw == "" {
		return model.ClickDirect
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return model.ClickInvalid
	}

	host := strings.ToLower(u.Hostname())

	switch {
	case containsAny(host, searchDomains...):
		return model.ClickSearchEngine
	case containsAny(host, socialDomains...):
		return model.ClickSocialMedia
	case containsAny(host, videoDomains...):
		return model.ClickVideoPlatform
	case containsAny(host, emailDomains...):
		return model.ClickEmail
	default:
		return model.ClickOther
	}
}
