// Package store is the record store: per-entity CRUD over GORM with a
// uniform contract (create/list/get/update/delete, conjunctive equality
// filters, sort/limit/skip). Handlers and services never touch SQL directly,
// so a SQLite-backed double can substitute for Postgres in tests.
package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the referenced identity does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("record already exists")
)

// ValidationError reports a missing required field or an out-of-enum value.
// Always caller-recoverable; surfaced with field-level detail.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func required(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

func outOfEnum(field string, value string) error {
	return &ValidationError{Field: field, Reason: "unknown value " + value}
}

// ListOptions bounds and orders a List call. Zero value means the store
// default sort, no offset, and the store default limit.
type ListOptions struct {
	Sort  string
	Limit int
	Skip  int
}

func (o ListOptions) apply(q *gorm.DB, defaultSort string) *gorm.DB {
	sort := o.Sort
	if sort == "" {
		sort = defaultSort
	}
	if sort != "" {
		q = q.Order(sort)
	}
	if o.Limit > 0 {
		q = q.Limit(o.Limit)
	}
	if o.Skip > 0 {
		q = q.Offset(o.Skip)
	}
	return q
}
