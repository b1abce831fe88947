// Package di is a small service registry keyed by service and argument shape.
package di

import (
	"fmt"
	"strings"
)

// Service names something the container can build.
type Service string

// Shape is the ordered list of argument kinds a factory accepts.
type Shape []Kind

func (s Shape) String() string {
	if len(s) == 0 {
		return "()"
	}
	parts := make([]string, len(s))
	for i, k := range s {
		parts[i] = string(k)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Resolver builds registered services.
type Resolver interface {
	Resolve(service Service, args ...Arg) any
}

// Factory builds a service. args always match the registered shape.
type Factory func(r Resolver, args Args) any

// ConfigurationError reports a registry miss or an unmapped factory branch.
// It is raised with panic: it can only come from wiring mistakes.
type ConfigurationError struct {
	Service Service
	Shape   Shape
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("di: %s%s: %s", e.Service, e.Shape, e.Reason)
}

// Fail panics with a ConfigurationError for service.
func Fail(service Service, args Args, format string, a ...any) {
	panic(&ConfigurationError{Service: service, Shape: args.Shape(), Reason: fmt.Sprintf(format, a...)})
}

type registration struct {
	service Service
	shape   string
}

// Container holds factories. Registration happens before the first Resolve;
// a Container is not safe for concurrent registration.
type Container struct {
	factories map[registration]Factory
}

func NewContainer() *Container {
	return &Container{factories: make(map[registration]Factory)}
}

// Register adds or replaces the factory for service with the given shape.
func (c *Container) Register(service Service, shape Shape, factory Factory) {
	c.factories[registration{service, shape.String()}] = factory
}

// Has reports whether a factory for service and shape is registered.
func (c *Container) Has(service Service, shape Shape) bool {
	_, ok := c.factories[registration{service, shape.String()}]
	return ok
}

// Resolve builds service from args. A missing registration panics with a
// ConfigurationError.
func (c *Container) Resolve(service Service, args ...Arg) any {
	a := Args(args)
	factory, ok := c.factories[registration{service, a.Shape().String()}]
	if !ok {
		Fail(service, a, "no registration")
	}
	return factory(c, a)
}

// ResolveAs resolves service and asserts its type.
func ResolveAs[T any](r Resolver, service Service, args ...Arg) T {
	v := r.Resolve(service, args...)
	t, ok := v.(T)
	if !ok {
		Fail(service, args, "factory returned %T, want %T", v, *new(T))
	}
	return t
}

// Assembly registers a group of related services.
type Assembly interface {
	Assemble(c *Container)
}

// NewAssembler returns a container populated by assemblies, in order.
func NewAssembler(assemblies ...Assembly) *Container {
	c := NewContainer()
	for _, a := range assemblies {
		a.Assemble(c)
	}
	return c
}
