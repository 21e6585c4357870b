package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"academitrend/internal/metrics"
)

// NewRouter mounts every API route. All endpoints are exact-match
// GETs; anything else falls through to chi's default 404/405.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(requestMetrics)

	r.Get("/", h.Index)
	r.Get("/api/hello", h.Hello)
	r.Get("/api/forecast", h.PathForecast)
	r.Get("/api/path-forecast", h.PathForecast)
	r.Get("/api/simple-course-enrollment-prediction", h.SimplePrediction)
	r.Get("/api/course-enrollment-prediction", h.CoursePrediction)
	r.Get("/api/load-course-predictions", h.CourseSummary)
	r.Get("/api/filtered-course-predictions", h.FilteredPredictions)
	r.Get("/api/course-historical-data", h.HistoricalData)
	r.Get("/api/pathway-data", h.PathwayData)
	r.Get("/api/check-models", h.CheckModels)
	r.Get("/api/predictions", h.Predictions)

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		metrics.RequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(ww.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}
