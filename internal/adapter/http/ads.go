package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"salon-ads/internal/core/domain"
)

func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	var req createAdRequest
	files, err := h.decodePayload(w, r, &req)
	defer files.Close()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := req.toInput(files)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.ads.Create(r.Context(), actor, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toAdResponse(d))
}

func (h *Handler) handleGetAd(w http.ResponseWriter, r *http.Request) {
	adID, ok := h.pathID(w, r, "adID")
	if !ok {
		return
	}
	d, err := h.ads.Get(r.Context(), adID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAdResponse(d))
}

// handleUpdateAd applies a partial update. Omitted fields are kept,
// fields sent as empty lists are cleared and "campaign": null deletes the
// campaign.
func (h *Handler) handleUpdateAd(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	adID, ok := h.pathID(w, r, "adID")
	if !ok {
		return
	}
	var req updateAdRequest
	files, err := h.decodePayload(w, r, &req)
	defer files.Close()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := req.toInput(files)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.ads.Update(r.Context(), actor, adID, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAdResponse(d))
}

func (h *Handler) handleDeleteAd(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	adID, ok := h.pathID(w, r, "adID")
	if !ok {
		return
	}
	if err := h.ads.Delete(r.Context(), actor, adID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	adID, ok := h.pathID(w, r, "adID")
	if !ok {
		return
	}
	var req statusRequest
	h.limitBody(w, r)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, invalidPayload(err))
		return
	}
	ad, err := h.ads.SetStatus(r.Context(), actor, adID, domain.AdStatus(req.Status))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, statusResponse{ID: ad.ID, Status: ad.Status})
}

func (h *Handler) requireActor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return domain.Actor{}, false
	}
	return actor, true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		h.badRequest(w, r, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return id, true
}
