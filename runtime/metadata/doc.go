// Package metadata implements the out-of-band metadata registry behind
// Ornament's source-level annotation syntax: arbitrary key/value entries
// attached to objects and to individual named members of objects, stored
// without mutating the annotated value, and retrieved either locally or by
// walking an inheritance chain.
//
// # Overview
//
// The registry is an identity-keyed mapping from target to member key to an
// insertion-ordered metadata map. Targets are anything with a usable
// identity: pointers, channels, or reflect.Type values. Member keys are
// property names or Symbol tokens; the NoMember sentinel addresses the
// target itself. Metadata keys and values are opaque to the store.
//
// Entries are created lazily on first write and pruned eagerly on delete:
// the registry never retains empty containers.
//
// # Core Operations
//
// Every operation exists in an own-only and a chain-walking variant:
//
//   - Define / Delete: mutate exactly one (target, member) level
//   - HasOwn / GetOwn / OwnKeys: read exactly one level
//   - Has / Get / Keys: read through the target's parent chain
//
// Parent chains are produced by a ParentResolver. The default resolver
// prefers explicit declarations (SetParent, or a target implementing
// ParentCarrier) and falls back to reflective recovery: instances chain to
// their type, pointer types to their element type, and struct types to
// their first embedded struct field. The relationship must be acyclic;
// the store walks it without a cycle guard.
//
// # Example Usage
//
// Attaching and querying metadata through the default registry:
//
//	type Widget struct{}
//	type FancyWidget struct{ Widget }
//
//	base := reflect.TypeOf(Widget{})
//	fancy := reflect.TypeOf(FancyWidget{})
//
//	metadata.DefineMetadata("design:role", "container", base)
//
//	ok, _ := metadata.HasMetadata("design:role", fancy)   // true, inherited
//	ok, _ = metadata.HasOwnMetadata("design:role", fancy) // false
//
// Member-level metadata uses the optional trailing member key:
//
//	metadata.DefineMetadata("design:type", "string", base, "title")
//	v, ok, _ := metadata.GetMetadata("design:type", fancy, "title")
//
// Isolated registries are ordinary values:
//
//	reg := metadata.New(metadata.WithLogger(logger))
//	reg.Define("k", "v", target, metadata.NoMember)
//
// # Lifecycle
//
// The registry holds strong references to its targets: Go offers no
// identity-keyed weak mapping on this toolchain, so metadata keeps a target
// alive until the last entry is deleted or the target is passed to
// Unregister. Front ends that discard targets must unregister them.
package metadata
