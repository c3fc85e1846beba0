package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"facultyhub/internal/auth"
	"facultyhub/internal/form"
	"facultyhub/internal/models"
	"facultyhub/internal/registry"
	"facultyhub/internal/service"
)

type FormHandler struct {
	svc *service.FormService
}

func NewFormHandler(svc *service.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

func (h *FormHandler) session(r *http.Request) *form.Session {
	claims := auth.GetUser(r.Context())
	return h.svc.Session(claims.UserID)
}

// State returns the current form snapshot for rendering.
func (h *FormHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session(r).Snapshot())
}

func (h *FormHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := models.ParseCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sess := h.session(r)
	if err := sess.SelectCategory(c); err != nil {
		writeFormError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (h *FormHandler) SetField(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var req struct {
		Value any `json:"value"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess := h.session(r)
	if err := sess.SetField(key, req.Value); err != nil {
		writeFormError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (h *FormHandler) AddAuthor(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	if err := sess.AddAuthor(); err != nil {
		writeFormError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (h *FormHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid author index")
		return
	}
	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess := h.session(r)
	if err := sess.UpdateAuthor(index, req.Field, req.Value); err != nil {
		writeFormError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (h *FormHandler) RemoveAuthor(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid author index")
		return
	}
	sess := h.session(r)
	if err := sess.RemoveAuthor(index); err != nil {
		writeFormError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (h *FormHandler) NextStep(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	if err := sess.NextStep(); err != nil {
		writeFormError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (h *FormHandler) PrevStep(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	if err := sess.PrevStep(); err != nil {
		writeFormError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	rec, err := h.session(r).Submit()
	if err != nil {
		writeFormError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Registry returns the step definitions the frontend renders a cohort from.
func (h *FormHandler) Registry(w http.ResponseWriter, r *http.Request) {
	c, err := models.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category":   c,
		"totalSteps": registry.TotalSteps(c),
		"steps":      registry.Steps(c),
	})
}

func (h *FormHandler) LastSubmission(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	rec, ok := h.svc.LastSubmission(claims.UserID)
	if !ok {
		writeError(w, http.StatusNotFound, "no submission yet")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// writeFormError maps state machine errors to HTTP statuses. A failed step
// validation is the blocking message shown to the user.
func writeFormError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, form.ErrStepInvalid):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, form.ErrNoCategory),
		errors.Is(err, form.ErrNotFinalStep),
		errors.Is(err, form.ErrSubmitPending):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
