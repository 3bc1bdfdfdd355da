package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MunoMono/reference-library/internal/catalog"
	"github.com/MunoMono/reference-library/internal/domain"
)

func testServer() *Server {
	entries := []domain.BibEntry{
		{Key: "a", Title: "A", Tags: "Theoretical paper"},
		{Key: "b", Title: "B", Tags: "Design history"},
		{Key: "c", Title: "C"},
	}
	res := catalog.Build(entries, map[string]string{"k": "Archive"})
	return New(res, "", ":0", 12, nil)
}

func TestTagsEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer().tags(rec, httptest.NewRequest(http.MethodGet, "/api/tags", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Buckets  []BucketSummary `json:"buckets"`
		Untagged BucketSummary  `json:"untagged"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Buckets, 2)
	assert.Equal(t, "Design history", body.Buckets[0].Label)
	assert.Equal(t, 1, body.Buckets[0].Count)
	assert.Equal(t, "(Untagged)", body.Untagged.Label)
	assert.Equal(t, []string{"c"}, body.Untagged.Keys)
}

func TestChartsEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer().charts(rec, httptest.NewRequest(http.MethodGet, "/api/charts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		PaperTypes  []domain.ChartDatum `json:"paper_types"`
		Collections []domain.ChartDatum `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.PaperTypes, 1)
	assert.Equal(t, "Theoretical paper", body.PaperTypes[0].Label)
	require.Len(t, body.Collections, 1)
	assert.Equal(t, "Design history", body.Collections[0].Label)
}

func TestCORSHeaders(t *testing.T) {
	h := withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
