package farm

import (
	"fmt"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

// referenced blocks a delete of store/id while n records of by point at it.
func referenced(store memory.StoreName, id string, by memory.StoreName, n int) error {
	if n == 0 {
		return nil
	}
	return fmt.Errorf("%s %q has %d %s: %w", store, id, n, by, models.ErrReferenced)
}

func missing(field string, store memory.StoreName, id string) error {
	return fmt.Errorf("%s: %s %q does not exist: %w", field, store, id, models.ErrReferentialViolation)
}

func mismatch(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), models.ErrReferentialViolation)
}
