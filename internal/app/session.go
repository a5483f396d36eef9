package app

import (
	"net/http"

	"github.com/cinetixhq/cinema-booking-system/internal/domain"
)

type sessionKey string

const (
	SessionKeyUserId   = sessionKey("userID")
	SessionKeyUserRole = sessionKey("userRole")
)

func (s sessionKey) String() string {
	return string(s)
}

func (app *Application) contextGetUserId(r *http.Request) int {
	userId, ok := r.Context().Value(SessionKeyUserId).(int)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}

func (app *Application) contextGetUserRole(r *http.Request) domain.Role {
	role, ok := r.Context().Value(SessionKeyUserRole).(domain.Role)
	if !ok {
		panic("missing user role from context")
	}

	return role
}
