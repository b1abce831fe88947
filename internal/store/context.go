// Package store wraps gorm in a small unit-of-work: objects are created and
// changed in a Context and written together by Save.
package store

import (
	"context"
	"fmt"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"brewer-backend/internal/model"
)

// Record is a persisted entity addressable by a string primary key.
type Record interface {
	model.Entity
	PrimaryKey() string
	SetPrimaryKey(key string)
}

// Validator is implemented by records that check themselves before being written.
type Validator interface {
	Validate() error
}

// ObjectID identifies a record within a context.
type ObjectID struct {
	Entity string
	Key    string
}

func (id ObjectID) String() string { return id.Entity + "/" + id.Key }

// IDOf returns the identity of a record.
func IDOf(r Record) ObjectID {
	return ObjectID{Entity: r.EntityName(), Key: r.PrimaryKey()}
}

// pendingSet keeps insertion order so writes are deterministic.
type pendingSet struct {
	order   []ObjectID
	records map[ObjectID]Record
}

func newPendingSet() *pendingSet {
	return &pendingSet{records: make(map[ObjectID]Record)}
}

func (p *pendingSet) add(r Record) {
	id := IDOf(r)
	if _, ok := p.records[id]; !ok {
		p.order = append(p.order, id)
	}
	p.records[id] = r
}

func (p *pendingSet) remove(id ObjectID) {
	if _, ok := p.records[id]; !ok {
		return
	}
	delete(p.records, id)
	for i, o := range p.order {
		if o == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

func (p *pendingSet) has(id ObjectID) bool {
	_, ok := p.records[id]
	return ok
}

func (p *pendingSet) each(fn func(Record) error) error {
	for _, id := range p.order {
		if err := fn(p.records[id]); err != nil {
			return err
		}
	}
	return nil
}

func (p *pendingSet) len() int { return len(p.order) }

// Context tracks registered objects and pending changes. It is confined to a
// single goroutine at a time; callers serialise access.
type Context struct {
	db         *gorm.DB
	registered map[ObjectID]Record
	inserted   *pendingSet
	updated    *pendingSet
	deleted    *pendingSet

	insertOrder []string
}

// NewContext creates an empty context over db. Pending inserts are written
// grouped by entity in insertOrder (referenced entities first); entities not
// listed follow in creation order.
func NewContext(db *gorm.DB, insertOrder ...string) *Context {
	c := &Context{db: db, registered: make(map[ObjectID]Record), insertOrder: insertOrder}
	c.reset()
	return c
}

func (c *Context) reset() {
	c.inserted = newPendingSet()
	c.updated = newPendingSet()
	c.deleted = newPendingSet()
}

// DB returns the underlying connection.
func (c *Context) DB() *gorm.DB { return c.db }

// Insert registers r as a new object to be written on the next Save.
func (c *Context) Insert(r Record) {
	c.registered[IDOf(r)] = r
	c.inserted.add(r)
}

func (c *Context) register(r Record) {
	c.registered[IDOf(r)] = r
}

// MarkChanged schedules an update for a registered object.
func (c *Context) MarkChanged(r Record) {
	id := IDOf(r)
	if c.inserted.has(id) || c.deleted.has(id) {
		return
	}
	c.registered[id] = r
	c.updated.add(r)
}

// Delete schedules r for deletion. Deleting an unsaved object just forgets it.
func (c *Context) Delete(r Record) {
	id := IDOf(r)
	if c.inserted.has(id) {
		c.inserted.remove(id)
		delete(c.registered, id)
		return
	}
	c.deleted.add(r)
}

// CancelDelete withdraws a scheduled deletion. Earlier pending updates of r survive.
func (c *Context) CancelDelete(r Record) {
	c.deleted.remove(IDOf(r))
}

// IsDeleted reports whether r is scheduled for deletion.
func (c *Context) IsDeleted(id ObjectID) bool {
	return c.deleted.has(id)
}

// RegisteredObject returns the in-memory instance for id, if any. It never queries the store.
func (c *Context) RegisteredObject(id ObjectID) (Record, bool) {
	r, ok := c.registered[id]
	return r, ok
}

// HasChanges reports whether Save has anything to write.
func (c *Context) HasChanges() bool {
	return c.inserted.len()+c.updated.len()+c.deleted.len() > 0
}

// Rollback discards all pending changes. Unsaved inserts are forgotten.
func (c *Context) Rollback() {
	for _, id := range c.inserted.order {
		delete(c.registered, id)
	}
	c.reset()
}

func (c *Context) orderedInserts() []ObjectID {
	ids := slices.Clone(c.inserted.order)
	rank := func(entity string) int {
		if i := slices.Index(c.insertOrder, entity); i >= 0 {
			return i
		}
		return len(c.insertOrder)
	}
	slices.SortStableFunc(ids, func(a, b ObjectID) int {
		return rank(a.Entity) - rank(b.Entity)
	})
	return ids
}

// Save validates and writes pending changes in one transaction. With nothing
// pending it returns nil without touching the database. On failure the
// pending changes are kept so the caller may fix and retry.
func (c *Context) Save(ctx context.Context) error {
	if !c.HasChanges() {
		return nil
	}

	validate := func(r Record) error {
		if v, ok := r.(Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("validation failed for %s: %w", IDOf(r), err)
			}
		}
		return nil
	}
	if err := c.inserted.each(validate); err != nil {
		return err
	}
	if err := c.updated.each(func(r Record) error {
		if c.deleted.has(IDOf(r)) {
			return nil
		}
		return validate(r)
	}); err != nil {
		return err
	}

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range c.orderedInserts() {
			r := c.inserted.records[id]
			if err := tx.Omit(clause.Associations).Create(r).Error; err != nil {
				return fmt.Errorf("failed to insert %s: %w", id, err)
			}
		}
		if err := c.updated.each(func(r Record) error {
			if c.deleted.has(IDOf(r)) {
				return nil
			}
			if err := tx.Omit(clause.Associations).Save(r).Error; err != nil {
				return fmt.Errorf("failed to update %s: %w", IDOf(r), err)
			}
			return nil
		}); err != nil {
			return err
		}
		return c.deleted.each(func(r Record) error {
			if err := tx.Delete(r).Error; err != nil {
				return fmt.Errorf("failed to delete %s: %w", IDOf(r), err)
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	for _, id := range c.deleted.order {
		delete(c.registered, id)
	}
	c.reset()
	return nil
}
