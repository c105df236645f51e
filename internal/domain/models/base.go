package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Base carries the identity and audit timestamps shared by every stored entity.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta exposes the embedded Base so generic stores can stamp records.
func (b *Base) Meta() *Base { return b }

var (
	// ErrNotFound indicates an update or delete targeted an absent id.
	ErrNotFound = errors.New("record not found")

	// ErrValidation indicates malformed input or a broken entity invariant.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateKey indicates a natural key (code, tag, invoice) is already taken.
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrValidation)

	// ErrInvariant indicates an entity-level invariant would not hold after the write.
	ErrInvariant = fmt.Errorf("%w: invariant violated", ErrValidation)

	// ErrReferentialViolation indicates a foreign key points at a missing or incompatible record.
	ErrReferentialViolation = errors.New("referential violation")

	// ErrReferenced indicates a delete was blocked because other records still point at the target.
	ErrReferenced = fmt.Errorf("%w: record is still referenced", ErrReferentialViolation)
)

// Invariantf builds an ErrInvariant error with context.
func Invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// Module identifies one of the dashboard modules.
type Module string

const (
	ModuleAgro       Module = "agro"
	ModulePecuario   Module = "pecuario"
	ModuleFinanzas   Module = "finanzas"
	ModuleApicultura Module = "apicultura"
	ModuleGeneral    Module = "general"
)

// DateLayout is the calendar-day format used by every form date field.
const DateLayout = "2006-01-02"

func positive(field string, v float64) error {
	if v <= 0 {
		return Invariantf("%s must be greater than zero", field)
	}
	return nil
}

func nonNegative(field string, v *float64) error {
	if v != nil && *v < 0 {
		return Invariantf("%s must not be negative", field)
	}
	return nil
}

// Round2 rounds to two decimals, the precision every derived money and
// average field is stored with.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
