// Package kernel provides domain primitives shared by the order model.
//
// The package includes:
//   - IDGenerator: the capability that allocates order identifiers
//   - UUIDGenerator: the production IDGenerator backed by random UUIDs
//
// Identifiers are plain strings. The domain never parses them; it only
// compares them for equality, so route parameters that were never issued by a
// generator are simply not found.
package kernel
