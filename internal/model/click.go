package model

import (
	"time"
)

// Device type taxonomy assigned from the user-agent
const (
	DeviceSmartphone = "Smartphone"
	DeviceTablet     = "Tablet"
	DeviceConsole    = "Gaming Console"
	DeviceSmartTV    = "Smart TV"
	DeviceWearable   = "Wearable Device"
	DeviceEmbedded   = "Embedded Device"
	DeviceDesktop    = "Desktop"
	DeviceUnknown    = "Unknown"
)

// Click/referrer classification values. The referrer type never takes
// ClickQRScan; the click type takes it whenever the qr marker is present.
const (
	ClickDirect        = "direct"
	ClickSearchEngine  = "search_engine"
	ClickSocialMedia   = "social_media"
	ClickVideoPlatform = "video_platform"
	ClickEmail         = "email"
	ClickOther         = "other"
	ClickInvalid       = "invalid"
	ClickQRScan        = "qr_scan"
)

// ClickEvent represents one resolved redirect request. Append-only: rows are
// never updated or deleted by the service.
type ClickEvent struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LinkID       int64     `json:"link_id" gorm:"index;not null"`
	Referrer     *string   `json:"referrer" gorm:"type:varchar(512)"`
	ReferrerType string    `json:"referrer_type" gorm:"type:varchar(16)"`
	IPAddress    string    `json:"ip_address" gorm:"type:varchar(64)"`
	UserAgent    string    `json:"user_agent" gorm:"type:varchar(512)"`
	DeviceType   string    `json:"device_type" gorm:"type:varchar(32)"`
	OS           string    `json:"os" gorm:"type:varchar(64)"`
	Browser      string    `json:"browser" gorm:"type:varchar(64)"`
	ClickType    string    `json:"click_type" gorm:"type:varchar(16)"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Country      *string   `json:"country" gorm:"type:varchar(64)"`
	City         *string   `json:"city" gorm:"type:varchar(128)"`
	VisitorID    string    `json:"visitor_id" gorm:"type:varchar(64);index"`
	IsQRScan     bool      `json:"is_qr_scan"`
	ClickedAt    time.Time `json:"clicked_at" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for ClickEvent
func (ClickEvent) TableName() string {
	return "click_events"
}

// VisitorSession correlates a visitor's 30-minute browsing window with a
// link. One row per (link, visitor, session); repeated clicks update it.
type VisitorSession struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LinkID      int64     `json:"link_id" gorm:"not null;uniqueIndex:idx_link_visitor_session"`
	VisitorID   string    `json:"visitor_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_link_visitor_session"`
	SessionID   string    `json:"session_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_link_visitor_session"`
	Browser     string    `json:"browser" gorm:"type:varchar(64)"`
	OS          string    `json:"os" gorm:"type:varchar(64)"`
	DeviceType  string    `json:"device_type" gorm:"type:varchar(32)"`
	IPAddress   string    `json:"ip_address" gorm:"type:varchar(64)"`
	Referrer    *string   `json:"referrer" gorm:"type:varchar(512)"`
	FirstSeenAt time.Time `json:"first_seen_at" gorm:"autoCreateTime"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

// TableName returns the table name for VisitorSession
func (VisitorSession) TableName() string {
	return "visitor_sessions"
}

// LinkStats represents the realtime counters kept in Redis
type LinkStats struct {
	ShortCode  string       `json:"short_code"`
	PV         int64        `json:"pv"`
	UV         int64        `json:"uv"`
	TopSources []SourceStat `json:"top_sources"`
}

// SourceStat represents one traffic-source counter
type SourceStat struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}
