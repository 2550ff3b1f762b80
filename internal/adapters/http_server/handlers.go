// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"

	"talent_reviews/internal/app"
	"talent_reviews/internal/domain"
	"talent_reviews/internal/engine"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// reviewsParams is the query string of GET /v1/freelancers/{id}/reviews.
type reviewsParams struct {
	RatingMin    *int     `schema:"rating_min"`
	RatingMax    *int     `schema:"rating_max"`
	From         string   `schema:"from"`
	To           string   `schema:"to"`
	ProjectTypes []string `schema:"project_type"`
	Q            string   `schema:"q"`
	SortBy       string   `schema:"sort_by"`
	SortDir      string   `schema:"sort_dir"`
	Scoring      bool     `schema:"scoring"`
	Limit        int      `schema:"limit"`
}

type disputesParams struct {
	Q      string `schema:"q"`
	Date   string `schema:"date"`
	Status string `schema:"status"`
}

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/freelancers/{id}/reviews", h.listReviews)
	s.mux.Get("/v1/freelancers/{id}/disputes", h.listDisputes)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSONWithETag(w http.ResponseWriter, r *http.Request, v any, what string) {
	etag, body := calcETagAndBody(v)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("handler", what).Msg("failed to write body")
	}
}

func freelancerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return 0, false
	}
	return id, true
}

// parseDate accepts RFC3339 or YYYY-MM-DD. A date-only upper bound covers the whole day.
func parseDate(s string, endOfDay bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a date (YYYY-MM-DD or RFC3339)", s)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func (p reviewsParams) spec() (domain.FilterSpec, error) {
	from, err := parseDate(p.From, false)
	if err != nil {
		return domain.FilterSpec{}, err
	}
	to, err := parseDate(p.To, true)
	if err != nil {
		return domain.FilterSpec{}, err
	}

	var types []string
	for _, t := range p.ProjectTypes {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}

	spec := domain.FilterSpec{}.
		WithRating(p.RatingMin, p.RatingMax).
		WithDateRange(from, to).
		WithProjectTypes(types...).
		WithSearch(p.Q).
		WithSort(domain.SortField(p.SortBy), domain.SortDirection(strings.ToLower(p.SortDir)))
	return spec, spec.Validate()
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := freelancerID(w, r)
	if !ok {
		return
	}

	var p reviewsParams
	if err := decoder.Decode(&p, r.URL.Query()); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	limit := defaultLimit
	if p.Limit != 0 {
		if p.Limit < 0 || p.Limit > maxLimit {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return
		}
		limit = p.Limit
	}
	spec, err := p.spec()
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}

	res, err := h.Q.SearchReviews(r.Context(), id, spec, engine.Options{EnableSearchScoring: p.Scoring})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			writeProblem(w, http.StatusBadRequest, "Invalid filter", err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "freelancer not found")
			return
		}
		log.Error().Err(err).Int64("freelancer", id).Msg("review query failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "reviews unavailable")
		return
	}

	// TotalResults keeps the full count; only the returned page is trimmed.
	if len(res.FilteredReviews) > limit {
		res.FilteredReviews = res.FilteredReviews[:limit]
		res.SearchResults = res.SearchResults[:limit]
	}
	writeJSONWithETag(w, r, res, "listReviews")
}

func (h *Handlers) listDisputes(w http.ResponseWriter, r *http.Request) {
	id, ok := freelancerID(w, r)
	if !ok {
		return
	}

	var p disputesParams
	if err := decoder.Decode(&p, r.URL.Query()); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	date, err := parseDate(p.Date, false)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}
	status := domain.DisputeStatus(strings.ToLower(p.Status))
	if status != "" && !status.Valid() {
		writeProblem(w, http.StatusBadRequest, "Invalid status", "status must be one of open, under_review, resolved, closed")
		return
	}

	out, err := h.Q.SearchDisputes(r.Context(), id, domain.DisputeFilter{Search: p.Q, Date: date, Status: status})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "freelancer not found")
			return
		}
		log.Error().Err(err).Int64("freelancer", id).Msg("dispute query failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "disputes unavailable")
		return
	}
	writeJSONWithETag(w, r, struct {
		Items []domain.Dispute `json:"items"`
		Total int              `json:"total"`
	}{Items: out, Total: len(out)}, "listDisputes")
}
