package farm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/repository/memory"
)

// entity is satisfied by pointers to stored models that can check their own invariants.
type entity[T any] interface {
	memory.Record[T]
	Validate() error
}

// hooks plug the per-entity rules into a Collection. Every hook runs while the
// service mutation lock is held.
type hooks[T any, F any] struct {
	// mapForm turns a form into an entity; existing is nil on create.
	mapForm func(form F, existing *T) (T, error)
	// resolve checks references and fills fields derived from other stores.
	resolve func(rec *T, existing *T) error
	// guard blocks a delete while other records still point at the target.
	guard func(rec T) error
	// after runs once the write is stored; before or after is nil on create or delete.
	// It cannot fail: anything that may reject the write belongs in resolve or guard.
	after func(before, after *T)
}

// Collection is the CRUD surface of one entity.
type Collection[T any, P entity[T], F any] struct {
	svc   *Service
	name  memory.StoreName
	store *memory.Store[T, P]
	hooks hooks[T, F]
}

func newCollection[T any, P entity[T], F any](svc *Service, name memory.StoreName, store *memory.Store[T, P], h hooks[T, F]) *Collection[T, P, F] {
	return &Collection[T, P, F]{svc: svc, name: name, store: store, hooks: h}
}

// Name returns the backing store name.
func (c *Collection[T, P, F]) Name() memory.StoreName { return c.name }

// List returns every record in the store's order.
func (c *Collection[T, P, F]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.store.List(), nil
}

// Get returns one record or ErrNotFound.
func (c *Collection[T, P, F]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	rec, ok := c.store.Get(id)
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", c.name, id, models.ErrNotFound)
	}
	return rec, nil
}

// Create maps and stores a new record.
func (c *Collection[T, P, F]) Create(ctx context.Context, form F) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.svc.mu.Lock()
	defer c.svc.mu.Unlock()

	saved, err := c.create(form)
	c.svc.metrics.Mutation(string(c.name), "create", err)
	if err != nil {
		return zero, err
	}
	c.svc.logger.Debug("record created", zap.String("store", string(c.name)), zap.String("id", P(&saved).Meta().ID))
	return saved, nil
}

func (c *Collection[T, P, F]) create(form F) (T, error) {
	var zero T
	rec, err := c.prepare(form, nil)
	if err != nil {
		return zero, err
	}
	saved, err := c.store.Insert(rec)
	if err != nil {
		return zero, err
	}
	c.svc.invalidate(c.name)
	if c.hooks.after != nil {
		c.hooks.after(nil, &saved)
	}
	return saved, nil
}

// Update replaces the editable fields of id with the mapped form.
func (c *Collection[T, P, F]) Update(ctx context.Context, id string, form F) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.svc.mu.Lock()
	defer c.svc.mu.Unlock()

	saved, err := c.update(id, form)
	c.svc.metrics.Mutation(string(c.name), "update", err)
	if err != nil {
		return zero, err
	}
	c.svc.logger.Debug("record updated", zap.String("store", string(c.name)), zap.String("id", id))
	return saved, nil
}

func (c *Collection[T, P, F]) update(id string, form F) (T, error) {
	var zero T
	existing, ok := c.store.Get(id)
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", c.name, id, models.ErrNotFound)
	}
	rec, err := c.prepare(form, &existing)
	if err != nil {
		return zero, err
	}
	saved, err := c.store.Update(id, func(cur *T) error {
		base := *P(cur).Meta()
		*cur = rec
		*P(cur).Meta() = base
		return nil
	})
	if err != nil {
		return zero, err
	}
	c.svc.invalidate(c.name)
	if c.hooks.after != nil {
		c.hooks.after(&existing, &saved)
	}
	return saved, nil
}

// Delete removes id unless other records still reference it.
func (c *Collection[T, P, F]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.svc.mu.Lock()
	defer c.svc.mu.Unlock()

	err := c.delete(id)
	c.svc.metrics.Mutation(string(c.name), "delete", err)
	if err != nil {
		return err
	}
	c.svc.logger.Debug("record deleted", zap.String("store", string(c.name)), zap.String("id", id))
	return nil
}

func (c *Collection[T, P, F]) delete(id string) error {
	existing, ok := c.store.Get(id)
	if !ok {
		return fmt.Errorf("%s %q: %w", c.name, id, models.ErrNotFound)
	}
	if c.hooks.guard != nil {
		if err := c.hooks.guard(existing); err != nil {
			return err
		}
	}
	if err := c.store.Delete(id); err != nil {
		return err
	}
	c.svc.invalidate(c.name)
	if c.hooks.after != nil {
		c.hooks.after(&existing, nil)
	}
	return nil
}

// prepare maps the form and runs every check that must pass before the write.
func (c *Collection[T, P, F]) prepare(form F, existing *T) (T, error) {
	var zero T
	rec, err := c.hooks.mapForm(form, existing)
	if err != nil {
		return zero, err
	}
	if err := P(&rec).Validate(); err != nil {
		return zero, err
	}
	if c.hooks.resolve != nil {
		if err := c.hooks.resolve(&rec, existing); err != nil {
			return zero, err
		}
	}
	return rec, nil
}
