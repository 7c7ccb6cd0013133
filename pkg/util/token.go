package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewToken mints an opaque identifier for visitor/session cookies: a base36
// millisecond timestamp plus a random suffix. Opaque by construction — it
// carries no fingerprint of the client.
func NewToken() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return ts + "-" + suffix
}
