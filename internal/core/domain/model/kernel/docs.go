// Package kernel provides core domain primitives shared by the whole domain
// model. Currently it holds the UUID value object used to identify orders,
// line items, and actors. Primitives here are immutable, thread-safe, and
// enforce their own invariants so domain objects built on them are always in
// a valid state.
package kernel
