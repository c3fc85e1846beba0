package handler

import (
	"net/http"

	"facultyhub/internal/auth"
	"facultyhub/internal/service"
)

type DashboardHandler struct {
	catalog *service.CatalogService
}

func NewDashboardHandler(catalog *service.CatalogService) *DashboardHandler {
	return &DashboardHandler{catalog: catalog}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	summary, err := h.catalog.Dashboard(claims.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *DashboardHandler) ListConferences(w http.ResponseWriter, r *http.Request) {
	events, err := h.catalog.ListConferences(r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"conferences": events,
		"total":       len(events),
	})
}

func (h *DashboardHandler) CreateConference(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		People      int    `json:"people"`
		Date        string `json:"date"`
		Icon        string `json:"icon"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ev, err := h.catalog.CreateConference(req.Name, req.Description, req.People, req.Date, req.Icon)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}
