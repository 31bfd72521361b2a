package metadata

import (
	"fmt"
	"testing"
)

func BenchmarkDefine(b *testing.B) {
	r := New()
	target := &widget{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Define("design:role", "container", target, NoMember)
	}
}

func BenchmarkGetOwn(b *testing.B) {
	r := New()
	target := &widget{}
	r.Define("design:role", "container", target, NoMember)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.GetOwn("design:role", target, NoMember)
	}
}

func BenchmarkGetThroughChain(b *testing.B) {
	r := New()
	root := &widget{}
	r.Define("K", "v", root, NoMember)

	// Ten-level explicit chain; the value lives at the root.
	prev := root
	for i := 0; i < 10; i++ {
		next := &widget{name: fmt.Sprintf("level%d", i)}
		r.SetParent(next, prev)
		prev = next
	}
	leaf := prev

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Get("K", leaf, NoMember)
	}
}

func BenchmarkKeysCached(b *testing.B) {
	r := New()
	parent := &widget{}
	child := &widget{}
	r.SetParent(child, parent)
	for i := 0; i < 16; i++ {
		r.Define(fmt.Sprintf("own%d", i), i, child, NoMember)
		r.Define(fmt.Sprintf("inherited%d", i), i, parent, NoMember)
	}
	r.Keys(child, NoMember) // prime the cache

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Keys(child, NoMember)
	}
}

func BenchmarkToKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ToKey("title")
	}
}
