package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	"lumina/internal/content"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Collection serves list/get for everyone and create/update/delete for the
// routes mounted behind the admin guard. One instance per store collection.
type Collection[T any] struct {
	name   string
	list   func() []T
	get    func(id string) (T, bool)
	add    func(T) error
	update func(T) error
	remove func(id string)

	id      func(*T) *string
	tags    func(T) []string // nil disables ?tag=
	prepare func(*T) error
	keep    func(dst *T, old T) // fields a PUT body cannot overwrite

	log *zap.Logger
}

// Mount registers the collection on r. guards wrap the write routes.
func (c *Collection[T]) Mount(r chi.Router, guards ...func(http.Handler) http.Handler) {
	r.Get("/", c.List)
	r.Get("/{id}", c.Get)

	r.Group(func(r chi.Router) {
		r.Use(guards...)
		r.Post("/", c.Create)
		r.Put("/{id}", c.Update)
		r.Delete("/{id}", c.Delete)
	})
}

func (c *Collection[T]) List(w http.ResponseWriter, r *http.Request) {
	items := c.list()

	want := content.SplitList(strings.ToLower(r.URL.Query().Get("tag")))
	if len(want) > 0 && c.tags != nil {
		out := make([]T, 0, len(items))
		for _, it := range items {
			if hasTags(c.tags(it), want) {
				out = append(out, it)
			}
		}
		items = out
	}

	writeJSON(w, http.StatusOK, items)
}

func (c *Collection[T]) Get(w http.ResponseWriter, r *http.Request) {
	rec, ok := c.get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (c *Collection[T]) Create(w http.ResponseWriter, r *http.Request) {
	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	id := c.id(&rec)
	*id = strings.TrimSpace(*id)
	if *id == "" {
		*id = uuid.NewString()
	}
	if err := c.prepare(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.add(rec); err != nil {
		if errors.Is(err, content.ErrValidation) {
			http.Error(w, "duplicate id", http.StatusConflict)
			return
		}
		c.log.Error("create", zap.String("collection", c.name), zap.Error(err))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	// re-read so derived fields are in the response
	if stored, ok := c.get(*id); ok {
		rec = stored
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (c *Collection[T]) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	old, ok := c.get(id)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	*c.id(&rec) = id
	if c.keep != nil {
		c.keep(&rec, old)
	}
	if err := c.prepare(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.update(rec); err != nil {
		// removed between the lookup and the write
		if errors.Is(err, content.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		c.log.Error("update", zap.String("collection", c.name), zap.Error(err))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (c *Collection[T]) Delete(w http.ResponseWriter, r *http.Request) {
	c.remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func hasTags(have, want []string) bool {
	for _, t := range want {
		if !slices.ContainsFunc(have, func(h string) bool { return strings.EqualFold(h, t) }) {
			return false
		}
	}
	return true
}

// cleanList trims entries and drops blanks. It never returns nil.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
