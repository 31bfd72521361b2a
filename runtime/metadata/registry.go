package metadata

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const defaultCacheSize = 512

// Registry owns all metadata reachable from it: an identity-keyed mapping
// from target to member key to metadata map. Containers are created lazily
// on first write and pruned eagerly on delete; the registry never retains
// empty containers.
//
// A Registry is safe for concurrent use. Each operation is individually
// atomic; chain-walking reads take the chain level by level and observe
// concurrent writes at whatever levels they have not yet visited.
type Registry struct {
	mu       sync.RWMutex
	targets  map[any]map[Key]*metadataMap
	parents  map[any]any
	resolver ParentResolver
	logger   *zap.Logger

	// keysCache memoizes chain-walking Keys queries. gen is bumped on
	// every mutation, so entries from before a write simply stop matching.
	keysCache *lru.Cache[keysQuery, []any]
	gen       uint64

	cacheSize int
}

type keysQuery struct {
	target any
	member Key
	gen    uint64
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithParentResolver replaces the default parent resolver.
func WithParentResolver(resolver ParentResolver) Option {
	return func(r *Registry) {
		if resolver != nil {
			r.resolver = resolver
		}
	}
}

// WithLogger installs a logger for mutation tracing. The default is a nop
// logger; the registry never writes output unless asked to.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithCacheSize sets the capacity of the chain-query cache.
func WithCacheSize(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.cacheSize = n
		}
	}
}

// New constructs an empty registry. Front ends typically construct one per
// process; tests construct one per test for isolation.
func New(opts ...Option) *Registry {
	r := &Registry{
		targets:   make(map[any]map[Key]*metadataMap),
		parents:   make(map[any]any),
		resolver:  defaultResolver{},
		logger:    zap.NewNop(),
		cacheSize: defaultCacheSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	cache, err := lru.New[keysQuery, []any](r.cacheSize)
	if err != nil {
		// Unreachable: cacheSize is validated positive.
		cache, _ = lru.New[keysQuery, []any](defaultCacheSize)
	}
	r.keysCache = cache
	return r
}

// Define inserts or overwrites the (key -> value) entry in the metadata map
// for (target, member), creating intermediate containers as needed. Use
// NoMember to address the target itself.
func (r *Registry) Define(key, value any, target any, member Key) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}
	if err := validateMetadataKey(key); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.targets[target]
	if entry == nil {
		entry = make(map[Key]*metadataMap)
		r.targets[target] = entry
	}
	mm := entry[member]
	if mm == nil {
		mm = newMetadataMap()
		entry[member] = mm
	}
	mm.set(key, value)
	r.gen++

	r.logger.Debug("metadata defined",
		zap.String("member", member.String()),
		zap.Any("key", key))
	return nil
}

// HasOwn reports whether the metadata map for exactly (target, member)
// contains key. The parent chain is not consulted.
func (r *Registry) HasOwn(key, target any, member Key) (bool, error) {
	if err := r.validateLookup(key, target); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasOwnLocked(key, target, member), nil
}

// Has reports whether key is defined on (target, member) or anywhere up the
// target's parent chain.
func (r *Registry) Has(key, target any, member Key) (bool, error) {
	if err := r.validateLookup(key, target); err != nil {
		return false, err
	}
	for t := target; ; {
		r.mu.RLock()
		found := r.hasOwnLocked(key, t, member)
		r.mu.RUnlock()
		if found {
			return true, nil
		}
		parent, ok := r.parentOf(t)
		if !ok {
			return false, nil
		}
		t = parent
	}
}

// GetOwn returns the value for key on exactly (target, member). ok is false
// when no entry exists; absence is never an error.
func (r *Registry) GetOwn(key, target any, member Key) (any, bool, error) {
	if err := r.validateLookup(key, target); err != nil {
		return nil, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if mm := r.mapFor(target, member); mm != nil {
		v, ok := mm.get(key)
		return v, ok, nil
	}
	return nil, false, nil
}

// Get returns the value for key on (target, member), falling back level by
// level along the target's parent chain. The first level that defines the
// key wins, even when the stored value is nil.
func (r *Registry) Get(key, target any, member Key) (any, bool, error) {
	if err := r.validateLookup(key, target); err != nil {
		return nil, false, err
	}
	for t := target; ; {
		r.mu.RLock()
		var (
			v     any
			found bool
		)
		if mm := r.mapFor(t, member); mm != nil {
			v, found = mm.get(key)
		}
		r.mu.RUnlock()
		if found {
			return v, true, nil
		}
		parent, ok := r.parentOf(t)
		if !ok {
			return nil, false, nil
		}
		t = parent
	}
}

// OwnKeys returns the metadata keys defined directly on (target, member),
// in first-insertion order, each key once.
func (r *Registry) OwnKeys(target any, member Key) ([]any, error) {
	if err := ValidateTarget(target); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	mm := r.mapFor(target, member)
	if mm == nil {
		return []any{}, nil
	}
	return mm.keys(), nil
}

// Keys returns the union of OwnKeys for (target, member) and Keys for every
// ancestor along the parent chain: own keys first in their own order, then
// inherited keys not already seen in their own relative order. Results are
// served from the chain-query cache when no mutation has occurred since
// they were computed.
func (r *Registry) Keys(target any, member Key) ([]any, error) {
	if err := ValidateTarget(target); err != nil {
		return nil, err
	}

	r.mu.RLock()
	gen := r.gen
	r.mu.RUnlock()

	q := keysQuery{target: target, member: member, gen: gen}
	if cached, ok := r.keysCache.Get(q); ok {
		out := make([]any, len(cached))
		copy(out, cached)
		return out, nil
	}

	keys := []any{}
	seen := make(map[any]bool)
	for t, ok := target, true; ok; t, ok = r.parentOf(t) {
		r.mu.RLock()
		var own []any
		if mm := r.mapFor(t, member); mm != nil {
			own = mm.keys()
		}
		r.mu.RUnlock()
		for _, k := range own {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	r.keysCache.Add(q, keys)

	// Return a copy to prevent external mutation of the cached slice.
	out := make([]any, len(keys))
	copy(out, keys)
	return out, nil
}

// Delete removes the entry for key on exactly (target, member) and reports
// whether a deletion occurred. The parent chain is never consulted.
// Containers left empty by the deletion are pruned.
func (r *Registry) Delete(key, target any, member Key) (bool, error) {
	if err := r.validateLookup(key, target); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.targets[target]
	if !ok {
		return false, nil
	}
	mm := entry[member]
	if mm == nil || !mm.delete(key) {
		return false, nil
	}
	if mm.empty() {
		delete(entry, member)
		if len(entry) == 0 {
			delete(r.targets, target)
		}
	}
	r.gen++

	r.logger.Debug("metadata deleted",
		zap.String("member", member.String()),
		zap.Any("key", key))
	return true, nil
}

// SetParent declares parent as the explicit inheritance predecessor of
// child for chain-walking reads. Explicit declarations take precedence over
// the installed resolver. The declared relationship must stay acyclic;
// declaring a target as its own parent is rejected, longer cycles are the
// caller's contract.
func (r *Registry) SetParent(child, parent any) error {
	if err := ValidateTarget(child); err != nil {
		return err
	}
	if err := ValidateTarget(parent); err != nil {
		return err
	}
	if child == parent {
		return fmt.Errorf("%w: target cannot be its own parent", ErrInvalidTarget)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.parents[child] = parent
	r.gen++
	return nil
}

// Parent resolves the logical parent of target: the explicit declaration if
// one exists, otherwise whatever the installed resolver reports.
func (r *Registry) Parent(target any) (any, bool) {
	if ValidateTarget(target) != nil {
		return nil, false
	}
	return r.parentOf(target)
}

// Unregister removes all metadata and the explicit parent declaration for
// target. The registry keeps targets alive for as long as they carry
// metadata, so front ends that discard a target must unregister it to
// release the reference.
func (r *Registry) Unregister(target any) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.targets, target)
	delete(r.parents, target)
	r.gen++

	r.logger.Debug("target unregistered")
	return nil
}

func (r *Registry) validateLookup(key, target any) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}
	return validateMetadataKey(key)
}

// mapFor returns the metadata map for (target, member), or nil.
// Callers must hold r.mu.
func (r *Registry) mapFor(target any, member Key) *metadataMap {
	if entry, ok := r.targets[target]; ok {
		return entry[member]
	}
	return nil
}

// hasOwnLocked reports own-level presence. Callers must hold r.mu.
func (r *Registry) hasOwnLocked(key, target any, member Key) bool {
	if mm := r.mapFor(target, member); mm != nil {
		return mm.has(key)
	}
	return false
}

// parentOf resolves one chain level. Explicit declarations are read under
// the lock; the resolver runs outside it so user resolvers cannot deadlock
// against registry mutation.
func (r *Registry) parentOf(target any) (any, bool) {
	r.mu.RLock()
	parent, ok := r.parents[target]
	resolver := r.resolver
	r.mu.RUnlock()
	if ok {
		return parent, true
	}
	return resolver.ParentOf(target)
}
