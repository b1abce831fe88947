package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// Predicate is a gorm where clause with its arguments.
type Predicate struct {
	Query string
	Args  []any
}

// Where builds a predicate.
func Where(query string, args ...any) *Predicate {
	return &Predicate{Query: query, Args: args}
}

// SortDescriptor orders fetch results by a column.
type SortDescriptor struct {
	Key       string
	Ascending bool
}

func Ascending(key string) SortDescriptor  { return SortDescriptor{Key: key, Ascending: true} }
func Descending(key string) SortDescriptor { return SortDescriptor{Key: key} }

// FetchRequest describes a query. The zero value fetches everything in store order.
type FetchRequest struct {
	Predicate       *Predicate
	SortDescriptors []SortDescriptor
	Preload         []string
	Limit           int
}

// Operations is the typed create/fetch/save surface for one record type.
type Operations[T any, PT interface {
	*T
	Record
}] struct {
	context *Context
}

// NewOperations binds typed operations to a context.
func NewOperations[T any, PT interface {
	*T
	Record
}](c *Context) Operations[T, PT] {
	return Operations[T, PT]{context: c}
}

// EntityName is the table the operations work on.
func (o Operations[T, PT]) EntityName() string {
	return PT(new(T)).EntityName()
}

// Create returns a new registered, unsaved object with a fresh primary key.
func (o Operations[T, PT]) Create() PT {
	obj := PT(new(T))
	obj.SetPrimaryKey(uuid.NewString())
	o.context.Insert(obj)
	return obj
}

// Fetch returns persisted objects matching req. Objects already registered in
// the context are returned by identity; objects pending deletion are skipped;
// unsaved inserts are never included.
func (o Operations[T, PT]) Fetch(ctx context.Context, req FetchRequest) ([]PT, error) {
	var rows []T
	q := o.context.db.WithContext(ctx).Model(PT(new(T)))
	if req.Predicate != nil {
		q = q.Where(req.Predicate.Query, req.Predicate.Args...)
	}
	for _, p := range req.Preload {
		q = q.Preload(p)
	}
	for _, s := range req.SortDescriptors {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Key}, Desc: !s.Ascending})
	}
	if req.Limit > 0 {
		q = q.Limit(req.Limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", o.EntityName(), err)
	}

	out := make([]PT, 0, len(rows))
	for i := range rows {
		obj := PT(&rows[i])
		id := IDOf(obj)
		if o.context.IsDeleted(id) {
			continue
		}
		if existing, ok := o.context.RegisteredObject(id); ok {
			if typed, ok := existing.(PT); ok {
				out = append(out, typed)
				continue
			}
		}
		o.context.register(obj)
		out = append(out, obj)
	}
	return out, nil
}

// Save commits every pending change of the underlying context.
func (o Operations[T, PT]) Save(ctx context.Context) error {
	return o.context.Save(ctx)
}

// ObjectForID returns the registered instance for key, without querying the store.
func (o Operations[T, PT]) ObjectForID(key string) (PT, bool) {
	r, ok := o.context.RegisteredObject(ObjectID{Entity: o.EntityName(), Key: key})
	if !ok {
		return nil, false
	}
	typed, ok := r.(PT)
	return typed, ok
}

// Delete schedules obj for deletion on the next Save.
func (o Operations[T, PT]) Delete(obj PT) {
	o.context.Delete(obj)
}

// MarkChanged schedules an update of obj on the next Save.
func (o Operations[T, PT]) MarkChanged(obj PT) {
	o.context.MarkChanged(obj)
}
