package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewer-backend/internal/model"
)

const (
	serviceGreeting Service = "Greeting"
	serviceLength   Service = "Length"
)

func configurationError(t *testing.T, fn func()) *ConfigurationError {
	t.Helper()
	var got *ConfigurationError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a panic")
			err, ok := r.(*ConfigurationError)
			require.True(t, ok, "panic value %T", r)
			got = err
		}()
		fn()
	}()
	return got
}

func TestContainer_ResolveByShape(t *testing.T) {
	c := NewContainer()
	c.Register(serviceGreeting, nil, func(Resolver, Args) any { return "hello" })
	c.Register(serviceGreeting, Shape{KindEditable}, func(_ Resolver, a Args) any {
		if a.Editable(0) {
			return "hello, editor"
		}
		return "hello, reader"
	})
	c.Register(serviceLength, Shape{KindEditable}, func(r Resolver, a Args) any {
		return len(ResolveAs[string](r, serviceGreeting, a...))
	})

	assert.Equal(t, "hello", c.Resolve(serviceGreeting))
	assert.Equal(t, "hello, editor", c.Resolve(serviceGreeting, Editable(true)))
	assert.Equal(t, "hello, reader", ResolveAs[string](c, serviceGreeting, Editable(false)))
	assert.Equal(t, 13, ResolveAs[int](c, serviceLength, Editable(false)))

	assert.True(t, c.Has(serviceGreeting, Shape{KindEditable}))
	assert.False(t, c.Has(serviceGreeting, Shape{KindBrew}))
}

func TestContainer_MissesPanic(t *testing.T) {
	c := NewContainer()
	c.Register(serviceGreeting, nil, func(Resolver, Args) any { return "hello" })

	err := configurationError(t, func() { c.Resolve(serviceGreeting, Brew(&model.Brew{})) })
	assert.Equal(t, serviceGreeting, err.Service)
	assert.Equal(t, Shape{KindBrew}, err.Shape)
	assert.Contains(t, err.Error(), "Greeting(brew)")

	configurationError(t, func() { c.Resolve(serviceLength) })
	configurationError(t, func() { ResolveAs[int](c, serviceGreeting) })
}

func TestNewAssembler(t *testing.T) {
	var order []string
	c := NewAssembler(
		assemblyFunc(func(c *Container) {
			order = append(order, "first")
			c.Register(serviceGreeting, nil, func(Resolver, Args) any { return "first" })
		}),
		assemblyFunc(func(c *Container) {
			order = append(order, "second")
			c.Register(serviceGreeting, nil, func(Resolver, Args) any { return "second" })
		}),
	)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, "second", c.Resolve(serviceGreeting), "later assemblies override")
}

type assemblyFunc func(c *Container)

func (f assemblyFunc) Assemble(c *Container) { f(c) }

func TestArgs_Shape(t *testing.T) {
	args := Args{Attribute(model.AttributeTime), Editable(true)}
	assert.Equal(t, Shape{KindAttribute, KindEditable}, args.Shape())
	assert.Equal(t, "(attribute, editable)", args.Shape().String())
	assert.Equal(t, "()", Shape(nil).String())
	assert.Equal(t, model.AttributeTime, args.Attribute(0))
}
