package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/brightlearn/backend/internal/finance"
	"github.com/brightlearn/backend/internal/model"
	"github.com/brightlearn/backend/internal/service"
)

// CostItemHandler is the admin surface for the cost item list.
type CostItemHandler struct {
	svc service.CostItemService
}

// NewCostItemHandler creates a CostItemHandler.
func NewCostItemHandler(svc service.CostItemService) *CostItemHandler {
	return &CostItemHandler{svc: svc}
}

// List handles GET /api/finance/costs.
func (h *CostItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("list cost items failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if items == nil {
		items = []*model.CostItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Replace handles PUT /api/finance/costs.
func (h *CostItemHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []model.CostItemInput `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	items, err := h.svc.Replace(r.Context(), req.Items)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidCostData) {
			writeError(w, http.StatusUnprocessableEntity, "invalid_cost_item")
			return
		}
		slog.Error("replace cost items failed", "error", err)
		writeError(w, http.StatusInternalServerError, "replace_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
