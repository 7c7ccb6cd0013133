package mq

import (
	"github.com/tmash55/Linkty/internal/model"
)

// ClickMessage carries one attributed click through the async pipeline.
// NewVisitor is decided by the redirect handler (fresh visitor cookie) and
// must travel with the event so the consumer increments the right counters.
type ClickMessage struct {
	ShortCode  string           `json:"short_code"`
	Event      model.ClickEvent `json:"event"`
	NewVisitor bool             `json:"new_visitor"`
}
