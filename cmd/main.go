package main

import (
	"log"
	"net/http"

	"academitrend/internal/api"
	"academitrend/internal/config"
	"academitrend/internal/core"
	"academitrend/internal/domain/repository"
	"academitrend/internal/infrastructure/artifacts"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Model and data artifacts are loaded once; missing pieces leave
	// the matching endpoints in the unavailable state.
	store := artifacts.NewStore(cfg.ModelDir, cfg.DataDir)

	var repo repository.EnrollmentRepository = store
	var recorder repository.ForecastRecorder
	if cfg.PostgresURL != "" {
		pg := repository.NewPostgresRepository(cfg.PostgresURL)
		repo = pg
		if cfg.RecordForecasts {
			recorder = repository.NewPostgresForecastRecorder(pg.DB)
		}
	}

	enrollment := core.NewEnrollmentService(recorder)
	pathway := core.NewPathwayService(store)
	course := core.NewCourseService(store, repo)

	handler := api.NewHandler(enrollment, pathway, course)
	router := api.NewRouter(handler)

	log.Printf("Starting server on %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, router))
}
