// Package auth classifies admin credentials into roles. It knows nothing
// about HTTP or tokens; the login handler exchanges a successful resolution
// for a JWT.
package auth

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"

	"github.com/iliyamo/hostel-mess/internal/model"
	"github.com/iliyamo/hostel-mess/internal/utils"
)

// Role is the outcome of credential resolution.
type Role string

const (
	RoleUnauthenticated Role = ""
	RoleConvenor        Role = "CONVENOR"
	RoleSuperadmin      Role = "SUPERADMIN"
)

// Superadmin is the externally-configured break-glass identity. It is not
// tied to a boarder row and always resolves to RoleSuperadmin.
type Superadmin struct {
	Username string
	Room     string
	PIN      string
}

// BoarderSource looks up a boarder by username and room.
type BoarderSource interface {
	GetByUsernameAndRoom(ctx context.Context, username, room string) (model.Boarder, error)
}

// Resolver authorizes (username, room, pin) triples. There is deliberately
// no lockout or rate limiting here; that gap is documented, not fixed.
type Resolver struct {
	Boarders BoarderSource
	Super    Superadmin
}

func NewResolver(boarders BoarderSource, super Superadmin) *Resolver {
	return &Resolver{Boarders: boarders, Super: super}
}

// Authorize resolves a credential triple. The superadmin triple wins before
// any table lookup. A boarder must match username and room and verify the
// PIN against the stored bcrypt hash; non-convenors resolve to
// RoleUnauthenticated even with correct credentials. The error return is
// reserved for persistence failures.
func (r *Resolver) Authorize(ctx context.Context, username, room, pin string) (Role, error) {
	if eq(username, r.Super.Username) && eq(room, r.Super.Room) && eq(pin, r.Super.PIN) {
		return RoleSuperadmin, nil
	}
	b, err := r.Boarders.GetByUsernameAndRoom(ctx, username, room)
	if errors.Is(err, sql.ErrNoRows) {
		return RoleUnauthenticated, nil
	}
	if err != nil {
		return RoleUnauthenticated, err
	}
	if !utils.VerifyPIN(b.PINHash, pin) {
		return RoleUnauthenticated, nil
	}
	if !b.IsConvenor {
		return RoleUnauthenticated, nil
	}
	return RoleConvenor, nil
}

func eq(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
