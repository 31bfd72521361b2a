package decorate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ornament-lang/ornament/runtime/metadata"
)

type widget struct{ name string }

func newWidget() *widget { return &widget{} }

func newTestConstructor(t *testing.T, name string) *Constructor {
	t.Helper()
	ctor, err := NewConstructor(name, newWidget)
	require.NoError(t, err)
	return ctor
}

func TestDecorateClassRunsInReverseOrder(t *testing.T) {
	ctor := newTestConstructor(t, "Widget")

	var order []string
	record := func(name string) ClassDecorator {
		return func(c *Constructor) (*Constructor, error) {
			order = append(order, name)
			return nil, nil
		}
	}

	result, err := DecorateClass([]ClassDecorator{record("D1"), record("D2"), record("D3")}, ctor)
	require.NoError(t, err)

	assert.Equal(t, []string{"D3", "D2", "D1"}, order)
	assert.Same(t, ctor, result, "all-nil returns must yield the original constructor")
}

func TestDecorateClassThreadsReplacements(t *testing.T) {
	ctor := newTestConstructor(t, "Widget")
	replA := newTestConstructor(t, "WidgetA")
	replB := newTestConstructor(t, "WidgetB")

	var sawByD2, sawByD1 *Constructor
	d1 := func(c *Constructor) (*Constructor, error) {
		sawByD1 = c
		return replB, nil
	}
	d2 := func(c *Constructor) (*Constructor, error) {
		sawByD2 = c
		return replA, nil
	}
	d3 := func(c *Constructor) (*Constructor, error) {
		return nil, nil
	}

	result, err := DecorateClass([]ClassDecorator{d1, d2, d3}, ctor)
	require.NoError(t, err)

	assert.Same(t, ctor, sawByD2, "D3 returned nil, so D2 sees the original")
	assert.Same(t, replA, sawByD1, "D1 sees D2's replacement")
	assert.Same(t, replB, result, "the first-listed decorator has the last word")
}

func TestDecorateClassEmptyList(t *testing.T) {
	ctor := newTestConstructor(t, "Widget")
	result, err := DecorateClass(nil, ctor)
	require.NoError(t, err)
	assert.Same(t, ctor, result)
}

func TestDecorateClassValidation(t *testing.T) {
	ctor := newTestConstructor(t, "Widget")

	_, err := DecorateClass(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidConstructor)

	_, err = DecorateClass(nil, &Constructor{Name: "NoFunc"})
	assert.ErrorIs(t, err, ErrInvalidConstructor)

	_, err = DecorateClass([]ClassDecorator{nil}, ctor)
	assert.ErrorIs(t, err, ErrInvalidDecorator)
}

func TestDecorateClassInvalidReplacement(t *testing.T) {
	ctor := newTestConstructor(t, "Widget")

	var d1Ran bool
	d1 := func(c *Constructor) (*Constructor, error) {
		d1Ran = true
		return nil, nil
	}
	d2 := func(c *Constructor) (*Constructor, error) {
		return &Constructor{Name: "Broken"}, nil
	}

	_, err := DecorateClass([]ClassDecorator{d1, d2}, ctor)
	assert.ErrorIs(t, err, ErrInvalidReplacement)
	assert.False(t, d1Ran, "the fold must abort before applying the invalid replacement")
}

func TestDecorateClassPropagatesErrors(t *testing.T) {
	ctor := newTestConstructor(t, "Widget")
	boom := errors.New("boom")

	_, err := DecorateClass([]ClassDecorator{
		func(c *Constructor) (*Constructor, error) { return nil, boom },
	}, ctor)
	assert.ErrorIs(t, err, boom)
}

func TestDecorateMemberRunsInReverseOrder(t *testing.T) {
	target := &widget{}

	var order []string
	record := func(name string) MemberDecorator {
		return func(tgt any, member metadata.Key, desc *Descriptor) (*Descriptor, error) {
			order = append(order, name)
			assert.Same(t, target, tgt)
			assert.Equal(t, metadata.StringKey("title"), member)
			return nil, nil
		}
	}

	desc := &Descriptor{Value: "initial", Writable: true}
	result, err := DecorateMember([]MemberDecorator{record("D1"), record("D2")}, target, "title", desc)
	require.NoError(t, err)

	assert.Equal(t, []string{"D2", "D1"}, order)
	assert.Same(t, desc, result, "nil returns leave the descriptor unchanged")
}

func TestDecorateMemberThreadsDescriptors(t *testing.T) {
	target := &widget{}
	replaced := &Descriptor{Value: "replaced", Writable: true}

	var d1Saw *Descriptor
	d1 := func(tgt any, member metadata.Key, desc *Descriptor) (*Descriptor, error) {
		d1Saw = desc
		return nil, nil
	}
	d2 := func(tgt any, member metadata.Key, desc *Descriptor) (*Descriptor, error) {
		return replaced, nil
	}

	result, err := DecorateMember([]MemberDecorator{d1, d2}, target, "title", nil)
	require.NoError(t, err)
	assert.Same(t, replaced, d1Saw)
	assert.Same(t, replaced, result)
}

func TestDecorateMemberNilDescriptor(t *testing.T) {
	target := &widget{}
	result, err := DecorateMember([]MemberDecorator{
		func(tgt any, member metadata.Key, desc *Descriptor) (*Descriptor, error) {
			assert.Nil(t, desc)
			return nil, nil
		},
	}, target, "title", nil)
	require.NoError(t, err)
	assert.Nil(t, result, "absent descriptor stays absent when no decorator produces one")
}

func TestDecorateMemberValidation(t *testing.T) {
	target := &widget{}

	_, err := DecorateMember(nil, nil, "title", nil)
	assert.ErrorIs(t, err, metadata.ErrInvalidTarget)

	_, err = DecorateMember(nil, "not-a-target", "title", nil)
	assert.ErrorIs(t, err, metadata.ErrInvalidTarget)

	_, err = DecorateMember(nil, target, struct{}{}, nil)
	assert.ErrorIs(t, err, metadata.ErrInvalidMemberKey)

	_, err = DecorateMember(nil, target, metadata.NoMember, nil)
	assert.ErrorIs(t, err, metadata.ErrInvalidMemberKey)

	_, err = DecorateMember([]MemberDecorator{nil}, target, "title", nil)
	assert.ErrorIs(t, err, ErrInvalidDecorator)

	mixed := &Descriptor{Value: "v", Get: func() any { return nil }}
	_, err = DecorateMember(nil, target, "title", mixed)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestDecorateMemberInvalidReplacement(t *testing.T) {
	target := &widget{}

	var d1Ran bool
	d1 := func(tgt any, member metadata.Key, desc *Descriptor) (*Descriptor, error) {
		d1Ran = true
		return nil, nil
	}
	d2 := func(tgt any, member metadata.Key, desc *Descriptor) (*Descriptor, error) {
		return &Descriptor{Value: "v", Set: func(any) {}}, nil
	}

	_, err := DecorateMember([]MemberDecorator{d1, d2}, target, "title", nil)
	assert.ErrorIs(t, err, ErrInvalidReplacement)
	assert.False(t, d1Ran)
}

func TestDecorateMemberSymbolKey(t *testing.T) {
	target := &widget{}
	sym := metadata.NewSymbol("hidden")

	var saw metadata.Key
	_, err := DecorateMember([]MemberDecorator{
		func(tgt any, member metadata.Key, desc *Descriptor) (*Descriptor, error) {
			saw = member
			return nil, nil
		},
	}, target, sym, nil)
	require.NoError(t, err)

	got, ok := saw.Symbol()
	require.True(t, ok)
	assert.Same(t, sym, got)
}
