package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"taskplanner/internal/adapter/http/middleware"
	"taskplanner/pkg/apierrors"
	"taskplanner/pkg/translator"
)

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware(), middleware.LanguageMiddleware())
	return router
}

func perform(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept-Language", translator.LanguageEn)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, status, got.ErrDetails.Code)
	require.Equal(t, message, got.ErrDetails.Message)
	require.NotEmpty(t, got.ErrDetails.RequestID)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var got T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}
