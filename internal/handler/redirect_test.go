package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/tmash55/Linkty/internal/config"
	"github.com/tmash55/Linkty/internal/mocks"
	"github.com/tmash55/Linkty/internal/model"
	"github.com/tmash55/Linkty/internal/mq"
	"github.com/tmash55/Linkty/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type redirectTestEnv struct {
	shortLinkSvc *mocks.MockShortLinkServiceInterface
	clickSvc     *mocks.MockClickServiceInterface
	producer     *mocks.MockProducerInterface
	router       *gin.Engine
}

func newRedirectTestEnv(t *testing.T, ctrl *gomock.Controller, withMQ bool) *redirectTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &redirectTestEnv{
		shortLinkSvc: mocks.NewMockShortLinkServiceInterface(ctrl),
		clickSvc:     mocks.NewMockClickServiceInterface(ctrl),
	}

	var producer mq.ProducerInterface
	if withMQ {
		env.producer = mocks.NewMockProducerInterface(ctrl)
		producer = env.producer
	}

	h := NewRedirectHandler(env.shortLinkSvc, env.clickSvc, producer, &config.RedirectConfig{
		NotFoundURL: "/404",
		ErrorURL:    "/error",
	}, time.Second)

	env.router = gin.New()
	env.router.GET("/s/:shortCode", h.Redirect)
	env.router.GET("/api/v1/analytics/:shortCode", h.GetStats)
	env.router.GET("/api/v1/analytics/:shortCode/clicks", h.GetClicks)
	return env
}

func waitCalled(t *testing.T, done <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func activeLink() *model.ShortLink {
	return &model.ShortLink{
		ID:          42,
		ShortCode:   "ABCD",
		OriginalURL: "https://example.com/landing",
		Status:      1,
	}
}

func TestRedirect_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newRedirectTestEnv(t, ctrl, false)

	recorded := make(chan struct{})
	upserted := make(chan struct{})

	var mu sync.Mutex
	var gotEvent *model.ClickEvent
	var gotSession *model.VisitorSession
	var gotNewVisitor bool

	env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "ABCD").Return(activeLink(), nil)
	env.clickSvc.EXPECT().Record(gomock.Any(), "ABCD", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, event *model.ClickEvent, newVisitor bool) error {
			mu.Lock()
			gotEvent = event
			gotNewVisitor = newVisitor
			mu.Unlock()
			close(recorded)
			return nil
		})
	env.clickSvc.EXPECT().UpsertSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *model.VisitorSession) error {
			mu.Lock()
			gotSession = session
			mu.Unlock()
			close(upserted)
			return nil
		})

	req := httptest.NewRequest(http.MethodGet, "/s/ABCD", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36")
	req.Header.Set("Referer", "https://www.google.com/search?q=linkty")
	req.Header.Set("X-Vercel-IP-Country", "US")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com/landing", w.Header().Get("Location"))

	// Fresh identity: both cookies minted with distinct values
	visitor := responseCookie(t, w, VisitorCookie)
	session := responseCookie(t, w, SessionCookie)
	require.NotNil(t, visitor)
	require.NotNil(t, session)
	assert.NotEqual(t, visitor.Value, session.Value)

	waitCalled(t, recorded, "click record")
	waitCalled(t, upserted, "session upsert")

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, gotNewVisitor)
	assert.Equal(t, int64(42), gotEvent.LinkID)
	assert.Equal(t, model.ClickSearchEngine, gotEvent.ReferrerType)
	assert.Equal(t, model.ClickSearchEngine, gotEvent.ClickType)
	assert.Equal(t, model.DeviceSmartphone, gotEvent.DeviceType)
	assert.Equal(t, "android", gotEvent.OS)
	assert.Equal(t, "chrome", gotEvent.Browser)
	assert.False(t, gotEvent.IsQRScan)
	assert.Equal(t, visitor.Value, gotEvent.VisitorID)
	require.NotNil(t, gotEvent.Country)
	assert.Equal(t, "US", *gotEvent.Country)

	assert.Equal(t, int64(42), gotSession.LinkID)
	assert.Equal(t, visitor.Value, gotSession.VisitorID)
	assert.Equal(t, session.Value, gotSession.SessionID)
}

func TestRedirect_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newRedirectTestEnv(t, ctrl, false)

	env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "GONE").Return(nil, service.ErrShortLinkNotFound)

	req := httptest.NewRequest(http.MethodGet, "/s/GONE", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/404", w.Header().Get("Location"))

	// No cookies and no click writes for unresolved codes
	assert.Empty(t, w.Result().Cookies())
}

func TestRedirect_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newRedirectTestEnv(t, ctrl, false)

	env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "OLD1").Return(nil, service.ErrShortLinkExpired)

	req := httptest.NewRequest(http.MethodGet, "/s/OLD1", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/404", w.Header().Get("Location"))
	assert.Empty(t, w.Result().Cookies())
}

func TestRedirect_ResolveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newRedirectTestEnv(t, ctrl, false)

	env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "ABCD").Return(nil, errors.New("mysql down"))

	req := httptest.NewRequest(http.MethodGet, "/s/ABCD", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/error", w.Header().Get("Location"))
	assert.Empty(t, w.Result().Cookies())
}

func TestRedirect_ReturningVisitor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newRedirectTestEnv(t, ctrl, false)

	recorded := make(chan struct{})
	upserted := make(chan struct{})

	var mu sync.Mutex
	var gotEvent *model.ClickEvent
	var gotNewVisitor bool

	env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "ABCD").Return(activeLink(), nil)
	env.clickSvc.EXPECT().Record(gomock.Any(), "ABCD", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, event *model.ClickEvent, newVisitor bool) error {
			mu.Lock()
			gotEvent = event
			gotNewVisitor = newVisitor
			mu.Unlock()
			close(recorded)
			return nil
		})
	env.clickSvc.EXPECT().UpsertSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *model.VisitorSession) error {
			close(upserted)
			return nil
		})

	req := httptest.NewRequest(http.MethodGet, "/s/ABCD", nil)
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "v-returning"})
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "s-live"})
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, w.Result().Cookies())

	waitCalled(t, recorded, "click record")
	waitCalled(t, upserted, "session upsert")

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, gotNewVisitor)
	assert.Equal(t, "v-returning", gotEvent.VisitorID)
}

func TestRedirect_QRMarkerWinsOverReferrer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newRedirectTestEnv(t, ctrl, false)

	recorded := make(chan struct{})
	upserted := make(chan struct{})

	var mu sync.Mutex
	var gotEvent *model.ClickEvent

	env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "ABCD").Return(activeLink(), nil)
	env.clickSvc.EXPECT().Record(gomock.Any(), "ABCD", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, event *model.ClickEvent, _ bool) error {
			mu.Lock()
			gotEvent = event
			mu.Unlock()
			close(recorded)
			return nil
		})
	env.clickSvc.EXPECT().UpsertSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *model.VisitorSession) error {
			close(upserted)
			return nil
		})

	req := httptest.NewRequest(http.MethodGet, "/s/ABCD?qr=true", nil)
	req.Header.Set("Referer", "https://www.google.com/")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	waitCalled(t, recorded, "click record")
	waitCalled(t, upserted, "session upsert")

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, gotEvent.IsQRScan)
	assert.Equal(t, model.ClickQRScan, gotEvent.ClickType)
	// Raw referrer classification still stored alongside
	assert.Equal(t, model.ClickSearchEngine, gotEvent.ReferrerType)
}

func TestRedirect_RecordFailureStillRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newRedirectTestEnv(t, ctrl, false)

	recorded := make(chan struct{})
	upserted := make(chan struct{})

	env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "ABCD").Return(activeLink(), nil)
	env.clickSvc.EXPECT().Record(gomock.Any(), "ABCD", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ *model.ClickEvent, _ bool) error {
			close(recorded)
			return errors.New("mysql down")
		})
	env.clickSvc.EXPECT().UpsertSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *model.VisitorSession) error {
			close(upserted)
			return errors.New("mysql down")
		})

	req := httptest.NewRequest(http.MethodGet, "/s/ABCD", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com/landing", w.Header().Get("Location"))

	waitCalled(t, recorded, "click record")
	waitCalled(t, upserted, "session upsert")
}

func TestRedirect_MQPathBypassesDirectWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newRedirectTestEnv(t, ctrl, true)

	sent := make(chan struct{})
	upserted := make(chan struct{})

	var mu sync.Mutex
	var gotMsg *mq.ClickMessage

	env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "ABCD").Return(activeLink(), nil)
	env.producer.EXPECT().SendClick(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *mq.ClickMessage) error {
			mu.Lock()
			gotMsg = msg
			mu.Unlock()
			close(sent)
			return nil
		})
	// Session upsert stays on the direct path even with MQ enabled
	env.clickSvc.EXPECT().UpsertSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *model.VisitorSession) error {
			close(upserted)
			return nil
		})

	req := httptest.NewRequest(http.MethodGet, "/s/ABCD", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	waitCalled(t, sent, "mq send")
	waitCalled(t, upserted, "session upsert")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "ABCD", gotMsg.ShortCode)
	assert.Equal(t, int64(42), gotMsg.Event.LinkID)
	assert.True(t, gotMsg.NewVisitor)
}

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newRedirectTestEnv(t, ctrl, false)

	t.Run("success", func(t *testing.T) {
		env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "ABCD").Return(activeLink(), nil)
		env.clickSvc.EXPECT().Stats(gomock.Any(), "ABCD").Return(&model.LinkStats{
			ShortCode: "ABCD",
			PV:        10,
			UV:        3,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/ABCD", nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"pv":10`)
		assert.Contains(t, w.Body.String(), `"uv":3`)
	})

	t.Run("unknown code", func(t *testing.T) {
		env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "GONE").Return(nil, service.ErrShortLinkNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/GONE", nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetClicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newRedirectTestEnv(t, ctrl, false)

	t.Run("custom limit", func(t *testing.T) {
		env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "ABCD").Return(activeLink(), nil)
		env.clickSvc.EXPECT().RecentClicks(gomock.Any(), int64(42), 5).Return([]model.ClickEvent{
			{LinkID: 42, ClickType: model.ClickDirect},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/ABCD/clicks?limit=5", nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("default limit", func(t *testing.T) {
		env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "ABCD").Return(activeLink(), nil)
		env.clickSvc.EXPECT().RecentClicks(gomock.Any(), int64(42), 50).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/ABCD/clicks", nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown code", func(t *testing.T) {
		env.shortLinkSvc.EXPECT().Resolve(gomock.Any(), "GONE").Return(nil, service.ErrShortLinkNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/GONE/clicks", nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
