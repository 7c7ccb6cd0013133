package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tmash55/Linkty/internal/config"
	"github.com/tmash55/Linkty/internal/detect"
	"github.com/tmash55/Linkty/internal/model"
	"github.com/tmash55/Linkty/internal/mq"
	"github.com/tmash55/Linkty/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// QRMarkerParam is the query parameter appended to QR-code URLs
const QRMarkerParam = "qr"

// RedirectHandler owns the redirect-and-click-attribution hot path
type RedirectHandler struct {
	shortLinkService service.ShortLinkServiceInterface
	clickService     service.ClickServiceInterface
	mqProducer       mq.ProducerInterface
	notFoundURL      string
	errorURL         string
	writeTimeout     time.Duration
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(
	shortLinkService service.ShortLinkServiceInterface,
	clickService service.ClickServiceInterface,
	mqProducer mq.ProducerInterface,
	redirectCfg *config.RedirectConfig,
	writeTimeout time.Duration,
) *RedirectHandler {
	if writeTimeout <= 0 {
		writeTimeout = 2 * time.Second
	}
	return &RedirectHandler{
		shortLinkService: shortLinkService,
		clickService:     clickService,
		mqProducer:       mqProducer,
		notFoundURL:      redirectCfg.NotFoundURL,
		errorURL:         redirectCfg.ErrorURL,
		writeTimeout:     writeTimeout,
	}
}

// Redirect handles GET /s/:shortCode
// @Summary Redirect to original URL
// @Description Resolves the short code, attributes the click and redirects
// @Tags shortlink
// @Param shortCode path string true "Short code"
// @Param qr query string false "QR scan marker"
// @Success 302
// @Router /s/:shortCode [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")

	sl, err := h.shortLinkService.Resolve(c.Request.Context(), shortCode)
	if err != nil {
		// Unresolved codes must not record clicks or touch cookies
		if errors.Is(err, service.ErrShortLinkNotFound) || errors.Is(err, service.ErrShortLinkExpired) {
			c.Redirect(http.StatusFound, h.notFoundURL)
			return
		}
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to resolve short link")
		c.Redirect(http.StatusFound, h.errorURL)
		return
	}

	id := ensureIdentity(c)

	userAgent := c.Request.UserAgent()
	ua := detect.ParseUserAgent(userAgent)

	referrer := c.Request.Referer()
	referrerType := detect.ClassifyReferrer(referrer)

	// The QR marker wins over the referrer for the click type; the raw
	// referrer classification is stored alongside for diagnostics.
	isQRScan := c.Query(QRMarkerParam) == "true"
	clickType := referrerType
	if isQRScan {
		clickType = model.ClickQRScan
	}

	geo := detect.GeoFromHeaders(c.Request.Header)

	var referrerPtr *string
	if referrer != "" {
		referrerPtr = &referrer
	}

	event := &model.ClickEvent{
		LinkID:       sl.ID,
		Referrer:     referrerPtr,
		ReferrerType: referrerType,
		IPAddress:    c.ClientIP(),
		UserAgent:    userAgent,
		DeviceType:   ua.DeviceType,
		OS:           ua.OS,
		Browser:      ua.Browser,
		ClickType:    clickType,
		Latitude:     geo.Latitude,
		Longitude:    geo.Longitude,
		Country:      geo.Country,
		City:         geo.City,
		VisitorID:    id.VisitorID,
		IsQRScan:     isQRScan,
	}

	session := &model.VisitorSession{
		LinkID:     sl.ID,
		VisitorID:  id.VisitorID,
		SessionID:  id.SessionID,
		Browser:    ua.Browser,
		OS:         ua.OS,
		DeviceType: ua.DeviceType,
		IPAddress:  c.ClientIP(),
		Referrer:   referrerPtr,
		LastSeenAt: time.Now(),
	}

	// Both writes are fire-and-forget: the user reaches the destination even
	// when analytics recording fails. Each runs under its own timeout
	// detached from the request context, which dies with the redirect.
	if h.mqProducer != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), h.writeTimeout)
			defer cancel()
			msg := &mq.ClickMessage{ShortCode: shortCode, Event: *event, NewVisitor: id.NewVisitor}
			if err := h.mqProducer.SendClick(ctx, msg); err != nil {
				log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to send click to MQ")
			}
		}()
	} else {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), h.writeTimeout)
			defer cancel()
			if err := h.clickService.Record(ctx, shortCode, event, id.NewVisitor); err != nil {
				log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to record click")
			}
		}()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.writeTimeout)
		defer cancel()
		if err := h.clickService.UpsertSession(ctx, session); err != nil {
			log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to upsert visitor session")
		}
	}()

	// 302 Redirect
	c.Redirect(http.StatusFound, sl.OriginalURL)
}

// GetStats handles GET /api/v1/analytics/:shortCode
// @Summary Get realtime stats for a short link
// @Description Returns PV/UV/top-source counters for a short link
// @Tags analytics
// @Param shortCode path string true "Short code"
// @Success 200 {object} Response{data=model.LinkStats}
// @Router /api/v1/analytics/:shortCode [get]
func (h *RedirectHandler) GetStats(c *gin.Context) {
	shortCode := c.Param("shortCode")

	if _, err := h.shortLinkService.Resolve(c.Request.Context(), shortCode); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Short link not found",
		})
		return
	}

	stats, err := h.clickService.Stats(c.Request.Context(), shortCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get stats",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    stats,
	})
}

// GetClicks handles GET /api/v1/analytics/:shortCode/clicks
// @Summary Get recent click events for a short link
// @Tags analytics
// @Param shortCode path string true "Short code"
// @Param limit query int false "Maximum events to return" default(50)
// @Success 200 {object} Response{data=[]model.ClickEvent}
// @Router /api/v1/analytics/:shortCode/clicks [get]
func (h *RedirectHandler) GetClicks(c *gin.Context) {
	shortCode := c.Param("shortCode")

	sl, err := h.shortLinkService.Resolve(c.Request.Context(), shortCode)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Short link not found",
		})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	events, err := h.clickService.RecentClicks(c.Request.Context(), sl.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get click events",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    events,
	})
}
