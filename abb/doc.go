// Package abb provides composable memory allocators: small primitive
// allocators (system heap, fixed arenas, a null sink) and combinators
// (fallback, segregator, bucketizer, freelist cache, cascading growth,
// affix metadata, debug stamping, a lock-free linear variant) that share one
// contract and nest at compile time into an allocation policy.
//
// # Allocator contract
//
// Every allocator implements Allocator:
//
//   - Allocate(size): a Block of at least size bytes, aligned to Alignment().
//     The null Block on exhaustion. Never panics on exhaustion.
//   - Deallocate(b): release a block returned by this allocator. A no-op on
//     the null block or on a block this allocator does not recognize
//     (NullAllocator alone panics on any non-null block).
//   - Reallocate(b, newSize): resize in place where possible; otherwise move
//     and copy. Returns false (and leaves b untouched) on failure.
//
// Two additional capabilities are expressed as optional interfaces rather
// than required methods, since Go has no partial interface satisfaction:
// OwningAllocator (Owns) and Resettable (DeallocateAll). Combinators that
// need to route a deallocate or reallocate call type-assert for these.
//
// # Composition
//
// Combinators are generic structs parameterized by the concrete type of
// their inner allocator(s), e.g. Fallback[Primary OwningAllocator,
// Secondary Allocator]. This keeps composition static and inlinable the way
// the C++ original this package is ported from relies on: a policy such as
// *Stamp[*Affix[*Freelist[*Linear], Header, NoAffix]] is one concrete Go
// type, not a chain of boxed interfaces.
//
// # Thread safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally, with the single exception of ConcurrentLinear, which is safe
// for concurrent Allocate/Deallocate/Reallocate from multiple goroutines.
package abb
