// Package decorate implements the decoration engine behind Ornament's
// annotation syntax: ordered lists of transformation functions applied to a
// constructor (class decoration) or to a (target, member, descriptor)
// triple (member decoration), folding replacement values back through the
// list.
//
// # Overview
//
// Decorators run in reverse list order, matching how nested source-level
// annotations evaluate: the decorator written closest to the declaration
// runs first, and the first-listed decorator has the last word on the
// result. A decorator may return nil to leave the current value untouched
// or a replacement to thread into the decorators that follow.
//
// Class decoration operates on Constructor values, the front end's handle
// for a compiled class: a named factory bound to the type it produces and
// to its explicit inheritance link. Member decoration operates on property
// Descriptors.
//
// The Metadata factory builds decorators whose only effect is writing one
// entry into the metadata registry:
//
//	ctor, _ := decorate.NewConstructor("FancyWidget", NewFancyWidget)
//	ctor.Extend(base)
//
//	ctor, err := decorate.DecorateClass([]decorate.ClassDecorator{
//		decorate.Metadata("design:role", "container").Class,
//		injectable,
//	}, ctor)
//
// All validation errors are raised before the offending value takes
// effect; see the package error variables for the taxonomy.
package decorate
