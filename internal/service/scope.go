package service

import (
	"halladmin/internal/errors"
	"halladmin/internal/model"
)

// Scope is the set of halls a user may act on.
type Scope struct {
	AllHalls bool
	Hall     int
}

// Allows reports whether the scope covers the given hall.
func (s Scope) Allows(hall int) bool {
	return s.AllHalls || s.Hall == hall
}

// ValidHall reports whether hall is one of the three known halls.
func ValidHall(hall int) bool {
	return hall >= 1 && hall <= 3
}

// ScopeFor derives the hall scope from a role and a requested hall.
// Admins always get all halls; any requested hall is ignored. Supervisors
// and agents get exactly the requested hall. Pure function, no I/O.
func ScopeFor(role string, requestedHall *int) (Scope, error) {
	switch role {
	case model.RoleAdmin:
		return Scope{AllHalls: true}, nil
	case model.RoleSupervisor, model.RoleAgent:
		if requestedHall == nil {
			return Scope{}, errors.ErrHallRequired
		}
		if !ValidHall(*requestedHall) {
			return Scope{}, errors.ErrInvalidHall
		}
		return Scope{Hall: *requestedHall}, nil
	default:
		return Scope{}, errors.ErrInvalidRole
	}
}

// ScopeForUser resolves the scope of an existing user from its stored role
// and hall assignment.
func ScopeForUser(u *model.User) (Scope, error) {
	return ScopeFor(u.Role, u.HallNumber)
}
