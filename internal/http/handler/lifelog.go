package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lumina/internal/content"

	"github.com/go-chi/chi/v5"
)

type LifeLogHandler struct {
	Store *content.Store
}

type lifeLogResp struct {
	Skills     []content.Skill       `json:"skills"`
	GameGenres []content.GameGenre   `json:"gameGenres"`
	Routine    []content.RoutineSlot `json:"routine"`
	Steps      []content.StepCount   `json:"steps"`
	PhotoStats []content.PhotoCount  `json:"photoStats"`
	Movies     []content.MovieCount  `json:"movies"`
}

func (h *LifeLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	s := h.Store
	writeJSON(w, http.StatusOK, lifeLogResp{
		Skills:     s.Skills(),
		GameGenres: s.GameGenres(),
		Routine:    s.Routine(),
		Steps:      s.Steps(),
		PhotoStats: s.PhotoStats(),
		Movies:     s.Movies(),
	})
}

func (h *LifeLogHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Summarize())
}

// Replace swaps one whole series; the path names it the way the GET body does.
func (h *LifeLogHandler) Replace(w http.ResponseWriter, r *http.Request) {
	s := h.Store
	switch chi.URLParam(r, "series") {
	case "skills":
		replaceSeries(w, r, s.ReplaceSkills)
	case "gameGenres":
		replaceSeries(w, r, s.ReplaceGameGenres)
	case "routine":
		replaceSeries(w, r, s.ReplaceRoutine)
	case "steps":
		replaceSeries(w, r, s.ReplaceSteps)
	case "photoStats":
		replaceSeries(w, r, s.ReplacePhotoStats)
	case "movies":
		replaceSeries(w, r, s.ReplaceMovies)
	default:
		http.Error(w, "unknown series", http.StatusNotFound)
	}
}

func replaceSeries[T any](w http.ResponseWriter, r *http.Request, replace func([]T) error) {
	var list []T
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := replace(list); err != nil {
		if errors.Is(err, content.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LifeLogHandler) Hero(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.HeroImages())
}

func (h *LifeLogHandler) ReplaceHero(w http.ResponseWriter, r *http.Request) {
	var urls []string
	if err := json.NewDecoder(r.Body).Decode(&urls); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	h.Store.ReplaceHeroImages(cleanList(urls))
	w.WriteHeader(http.StatusNoContent)
}
