// Package detect classifies untrusted request metadata (user-agent, referrer,
// edge geolocation headers) into the fixed taxonomies stored on click events.
package detect

import (
	"strings"

	"github.com/tmash55/Linkty/internal/model"
)

// UserAgent holds the classification derived from a raw User-Agent header
type UserAgent struct {
	Browser    string
	OS         string
	DeviceType string
}

// ParseUserAgent classifies a raw user-agent string. An empty or
// unrecognizable string yields "unknown"/"Unknown" values, never an error.
func ParseUserAgent(raw string) UserAgent {
	ua := strings.ToLower(raw)

	osName := detectOS(ua)

	return UserAgent{
		Browser:    detectBrowser(ua),
		OS:         osName,
		DeviceType: detectDevice(ua, osName),
	}
}

// detectDevice applies explicit device hints first, then falls back to
// inference from the OS name. Tablet hints are checked before smartphone
// hints because tablet user-agents frequently carry a "Mobile" token too.
func detectDevice(ua, osName string) string {
	switch {
	case containsAny(ua, "ipad", "tablet", "kindle", "silk"):
		return model.DeviceTablet
	case containsAny(ua, "playstation", "xbox", "nintendo"):
		return model.DeviceConsole
	case containsAny(ua, "smart-tv", "smarttv", "googletv", "appletv", "hbbtv", "netcast"):
		return model.DeviceSmartTV
	case strings.Contains(ua, "watch"):
		return model.DeviceWearable
	case containsAny(ua, "embedded", "raspberry"):
		return model.DeviceEmbedded
	case containsAny(ua, "mobile", "iphone", "ipod"):
		return model.DeviceSmartphone
	}

	switch {
	case containsAny(osName, "android", "ios", "windows phone"):
		return model.DeviceSmartphone
	case containsAny(osName, "windows", "mac", "linux"):
		// Desktop OS on an ARM CPU is treated as a tablet
		if containsAny(ua, "arm", "aarch64") {
			return model.DeviceTablet
		}
		return model.DeviceDesktop
	}

	return model.DeviceUnknown
}

// detectOS expects a lowercased user-agent
func detectOS(ua string) string {
	switch {
	case ua == "":
		return "unknown"
	case strings.Contains(ua, "windows phone"):
		return "windows phone"
	case strings.Contains(ua, "android"):
		return "android"
	case containsAny(ua, "iphone", "ipad", "ipod", "ios"):
		return "ios"
	case strings.Contains(ua, "windows"):
		return "windows"
	case containsAny(ua, "mac os x", "macintosh"):
		return "mac os"
	case strings.Contains(ua, "cros"):
		return "chrome os"
	case strings.Contains(ua, "linux"):
		return "linux"
	default:
		return "unknown"
	}
}

// detectBrowser expects a lowercased user-agent. Order matters: Chrome-based
// browsers embed "chrome" and almost everything embeds "safari".
func detectBrowser(ua string) string {
	switch {
	case ua == "":
		return "unknown"
	case containsAny(ua, "edg/", "edge/"):
		return "edge"
	case containsAny(ua, "opr/", "opera"):
		return "opera"
	case strings.Contains(ua, "samsungbrowser"):
		return "samsung internet"
	case containsAny(ua, "firefox", "fxios"):
		return "firefox"
	case containsAny(ua, "chrome", "crios"):
		return "chrome"
	case strings.Contains(ua, "safari"):
		return "safari"
	case containsAny(ua, "msie", "trident"):
		return "internet explorer"
	default:
		return "unknown"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
