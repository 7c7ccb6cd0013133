package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tmash55/Linkty/internal/mocks"
	"github.com/tmash55/Linkty/internal/model"
	"github.com/tmash55/Linkty/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newGenerateTestRouter(t *testing.T, ctrl *gomock.Controller) (*mocks.MockShortLinkServiceInterface, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := mocks.NewMockShortLinkServiceInterface(ctrl)
	h := NewGenerateHandler(svc)

	router := gin.New()
	router.POST("/api/v1/shortlink/generate", h.Generate)
	return svc, router
}

func postGenerate(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shortlink/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, router := newGenerateTestRouter(t, ctrl)

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *model.GenerateRequest) (*model.GenerateResponse, error) {
				assert.Equal(t, "https://example.com/landing", req.URL)
				return &model.GenerateResponse{
					ShortLink:   "http://localhost:8080/s/ABCD",
					ShortCode:   "ABCD",
					OriginalURL: req.URL,
				}, nil
			})

		w := postGenerate(router, `{"url":"https://example.com/landing"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"short_code":"ABCD"`)
	})

	t.Run("invalid url rejected by binding", func(t *testing.T) {
		w := postGenerate(router, `{"url":"not-a-url"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing url rejected by binding", func(t *testing.T) {
		w := postGenerate(router, `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("alias conflict", func(t *testing.T) {
		svc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, service.ErrAliasTaken)

		w := postGenerate(router, `{"url":"https://example.com/landing","alias":"taken"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		svc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, errors.New("mysql down"))

		w := postGenerate(router, `{"url":"https://example.com/landing"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
