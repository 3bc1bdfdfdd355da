// Package api serves one computed catalog over HTTP: read-only JSON views of
// the buckets and chart data, plus the generated static site. Nothing is
// stored; restart the server to pick up a new batch.
package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/MunoMono/reference-library/internal/catalog"
	"github.com/MunoMono/reference-library/internal/charts"
	"github.com/MunoMono/reference-library/internal/domain"
)

// Server exposes a single aggregation result.
type Server struct {
	result  catalog.Result
	siteDir string
	addr    string
	topK    int
	log     *zap.Logger
}

// New creates a server for one batch result. siteDir may be empty to skip
// static serving.
func New(res catalog.Result, siteDir, addr string, topK int, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{result: res, siteDir: siteDir, addr: addr, topK: topK, log: log}
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/tags", s.tags)
	mux.HandleFunc("GET /api/collections", s.collections)
	mux.HandleFunc("GET /api/charts", s.charts)
	mux.HandleFunc("GET /healthz", s.health)

	if s.siteDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.siteDir)))
	}

	s.log.Info("starting server", zap.String("addr", s.addr))
	return http.ListenAndServe(s.addr, withCORS(mux))
}

// withCORS adds CORS headers for frontend development.
func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) tags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"buckets":  bucketSummaries(s.result.TagBuckets),
		"untagged": bucketSummary(s.result.Untagged),
	})
}

func (s *Server) collections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"buckets": bucketSummaries(s.result.CollectionBuckets),
	})
}

func (s *Server) charts(w http.ResponseWriter, r *http.Request) {
	paperTypes, other := catalog.SplitPaperTypes(s.result.TagBuckets)
	writeJSON(w, http.StatusOK, map[string]any{
		"paper_types": charts.Map(paperTypes, len(paperTypes)),
		"collections": charts.Map(other, s.topK),
	})
}

// BucketSummary is a bucket without its full entry payload.
type BucketSummary struct {
	Label string   `json:"label"`
	Count int      `json:"count"`
	Keys  []string `json:"keys,omitempty"`
}

func bucketSummary(b domain.Bucket) BucketSummary {
	s := BucketSummary{Label: b.Label, Count: b.Count}
	for _, e := range b.Entries {
		s.Keys = append(s.Keys, e.Key)
	}
	return s
}

func bucketSummaries(buckets []domain.Bucket) []BucketSummary {
	out := make([]BucketSummary, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, bucketSummary(b))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
