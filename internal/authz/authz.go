// Package authz implements the role gate. Every core operation takes an
// explicit *Principal (nil for anonymous callers) instead of reading ambient
// session state, so authorization decisions are deterministic and testable.
package authz

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hopee-platform/hopee-backend/internal/models"
)

// Principal is the authenticated actor performing an operation. A nil
// *Principal means anonymous.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   models.UserRole
	NGOID  *uuid.UUID
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == models.RoleAdmin
}

func (p *Principal) IsNGO() bool {
	return p != nil && p.Role == models.RoleNGO && p.NGOID != nil
}

type Operation string

const (
	OpCaseCreate       Operation = "case.create"
	OpCaseList         Operation = "case.list"
	OpCaseReadOwn      Operation = "case.read_own"
	OpCaseUpdateStatus Operation = "case.update_status"
	OpCaseClaim        Operation = "case.claim"
	OpCaseDelete       Operation = "case.delete"

	OpNGORead   Operation = "ngo.read"
	OpNGOUpdate Operation = "ngo.update"
	OpNGOVerify Operation = "ngo.verify"

	OpAdminRequestCreate Operation = "admin_request.create"
	OpAdminRequestReview Operation = "admin_request.review"

	OpContactCreate Operation = "contact.create"
	OpContactTriage Operation = "contact.triage"

	OpStatsRead Operation = "stats.read"
)

// Resource carries the ownership attributes an operation is evaluated
// against. Zero value means the operation is not resource-scoped.
type Resource struct {
	OwnerEmail string
	NGOID      *uuid.UUID
}

// ErrUnauthenticated means no principal was presented for an operation that
// requires one.
var ErrUnauthenticated = errors.New("authentication required: please log in")

// ForbiddenError means the principal is authenticated but its role does not
// permit the operation.
type ForbiddenError struct {
	Op     Operation
	Reason string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden (%s): %s", e.Op, e.Reason)
}

func forbidden(op Operation, reason string) error {
	return &ForbiddenError{Op: op, Reason: reason}
}

// Authorize evaluates whether principal may perform op on res. It is called
// per request; decisions are never cached.
func Authorize(p *Principal, op Operation, res Resource) error {
	switch op {
	case OpCaseCreate, OpContactCreate:
		// Open to everyone, including anonymous reporters.
		return nil

	case OpCaseReadOwn:
		if p == nil {
			return ErrUnauthenticated
		}
		if p.IsAdmin() || p.Email == res.OwnerEmail {
			return nil
		}
		return forbidden(op, "you may only view cases you reported")

	case OpCaseList, OpCaseUpdateStatus, OpCaseClaim:
		if p == nil {
			return ErrUnauthenticated
		}
		if p.IsAdmin() || p.Role == models.RoleNGO {
			return nil
		}
		return forbidden(op, "only NGO or admin accounts may manage cases")

	case OpCaseDelete:
		if p == nil {
			return ErrUnauthenticated
		}
		if p.IsAdmin() {
			return nil
		}
		return forbidden(op, "only admins may delete cases")

	case OpNGORead:
		return nil

	case OpNGOUpdate:
		if p == nil {
			return ErrUnauthenticated
		}
		if p.IsAdmin() {
			return nil
		}
		if p.NGOID != nil && res.NGOID != nil && *p.NGOID == *res.NGOID {
			return nil
		}
		return forbidden(op, "you may only edit your own NGO profile")

	case OpAdminRequestCreate:
		if p == nil {
			return ErrUnauthenticated
		}
		if p.IsAdmin() {
			return forbidden(op, "you already have admin access")
		}
		return nil

	case OpNGOVerify, OpAdminRequestReview, OpContactTriage, OpStatsRead:
		if p == nil {
			return ErrUnauthenticated
		}
		if p.IsAdmin() {
			return nil
		}
		return forbidden(op, "admin access required; request it from your profile")
	}

	return forbidden(op, "unknown operation")
}
