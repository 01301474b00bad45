package httpadapter

import (
	"net/http"
	"strconv"

	"salon-ads/internal/core/port"
)

// handleSalonAds lists the ads a salon's display may show. The optional
// hour query parameter (0-23) restricts the result to ads scheduled at
// that hour.
func (h *Handler) handleSalonAds(w http.ResponseWriter, r *http.Request) {
	salonID, ok := h.pathID(w, r, "salonID")
	if !ok {
		return
	}
	q := port.ResolveQuery{SalonID: salonID}
	if raw := r.URL.Query().Get("hour"); raw != "" {
		hour, err := strconv.Atoi(raw)
		if err != nil {
			h.badRequest(w, r, "invalid 'hour'")
			return
		}
		q.Hour = &hour
	}
	ads, err := h.targeting.Resolve(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if ads == nil {
		ads = []port.ServableAd{}
	}
	h.writeJSON(w, http.StatusOK, salonAdsResponse{SalonID: salonID, Hour: q.Hour, Ads: ads})
}

// handleReach reports how many approved salons an ad's targeting covers.
func (h *Handler) handleReach(w http.ResponseWriter, r *http.Request) {
	adID, ok := h.pathID(w, r, "adID")
	if !ok {
		return
	}
	n, err := h.targeting.CountTargetedSalons(r.Context(), adID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reachResponse{AdID: adID, SalonCount: n})
}
