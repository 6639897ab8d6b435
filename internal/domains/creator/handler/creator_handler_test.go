package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorhub-backend/internal/domains/creator/repository"
	"creatorhub-backend/internal/domains/creator/service"
	"creatorhub-backend/internal/infrastructure/database"
	"creatorhub-backend/internal/shared/response"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.NewMigrator(db.DB).Run(context.Background(), database.Migrations()))

	h := NewCreatorHandler(service.NewCreatorService(repository.NewSQLiteRepository(db.DB)))

	router := gin.New()
	router.POST("/creators", h.Create)
	router.GET("/creators", h.List)
	router.GET("/creators/niches", h.Niches)
	router.GET("/creators/:id", h.GetByID)
	router.PUT("/creators/:id", h.Update)
	router.DELETE("/creators/:id", h.Delete)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestCreatorHandler_CreateAndGet(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/creators", gin.H{
		"name":    "  Tech Pro  ",
		"niche":   "Tech",
		"contact": "tech@example.com",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Success)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "Tech Pro", data["name"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/creators/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
}

func TestCreatorHandler_Create_ValidationErrorShape(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/creators", gin.H{
		"name":    "Tech Pro",
		"contact": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_FORMAT", envelope.Error.Code)
	assert.Equal(t, "Invalid email format", envelope.Error.Message)

	details := envelope.Error.Details.(map[string]interface{})
	assert.Equal(t, "contact", details["field"])
}

func TestCreatorHandler_GetByID_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/creators/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "YOUTUBER_NOT_FOUND", envelope.Error.Code)
}

func TestCreatorHandler_BadID(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/creators/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestCreatorHandler_DeleteLifecycle(t *testing.T) {
	router := newTestRouter(t)

	_, envelope := doJSON(t, router, http.MethodPost, "/creators", gin.H{"name": "Tech Pro"})
	require.True(t, envelope.Success)

	rec, _ := doJSON(t, router, http.MethodDelete, "/creators/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, envelope = doJSON(t, router, http.MethodDelete, "/creators/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "YOUTUBER_NOT_FOUND", envelope.Error.Code)
}
