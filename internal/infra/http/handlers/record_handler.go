package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Abidimam7/leadgen/internal/usecase"
)

// RecordService is the CRUD surface of a stored entity.
type RecordService[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, in T) (*T, error)
	Update(ctx context.Context, id string, patch usecase.Patch[T]) (*T, error)
	Delete(ctx context.Context, id string) error
}

type RecordHandler[T any] struct {
	svc RecordService[T]
}

func NewRecordHandler[T any](svc RecordService[T]) *RecordHandler[T] {
	return &RecordHandler[T]{svc: svc}
}

// Routes serves list/create on the collection and get/update/delete on {id}.
func (h *RecordHandler[T]) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *RecordHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(items))
}

func (h *RecordHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *RecordHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var in T
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	item, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update overlays the request body on the stored record, so omitted fields keep their values.
func (h *RecordHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	patch := func(item *T) error {
		if len(body) == 0 {
			return nil
		}
		return json.Unmarshal(body, item)
	}

	item, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *RecordHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
