package httpadapter

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"salon-ads/internal/core/domain"
)

// Identity headers are set by the auth gateway in front of the service.
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
	roleAdmin      = "admin"
)

var errNoActor = errors.New("missing or invalid " + headerUserID)

func actorFromRequest(r *http.Request) (domain.Actor, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(headerUserID)), 10, 64)
	if err != nil || id <= 0 {
		return domain.Actor{}, errNoActor
	}
	return domain.Actor{
		UserID:  id,
		IsAdmin: strings.EqualFold(strings.TrimSpace(r.Header.Get(headerUserRole)), roleAdmin),
	}, nil
}
