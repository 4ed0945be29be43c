package kernel

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// IDGenerator allocates unique order identifiers.
//
// Example:
//
//	var gen kernel.IDGenerator = kernel.NewUUIDGenerator()
//	id := gen.NextID() // e.g. "9f1c6a3e0d2b4c7a8e5f1a2b3c4d5e6f"
type IDGenerator interface {
	NextID() string
}

// IDGeneratorFunc adapts an ordinary function to IDGenerator.
type IDGeneratorFunc func() string

// NextID calls f.
func (f IDGeneratorFunc) NextID() string {
	return f()
}

// UUIDGenerator issues random (version 4) UUIDs rendered as 32 lowercase hex
// digits without separators.
type UUIDGenerator struct{}

// NewUUIDGenerator returns the production identifier generator.
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// NextID returns a new identifier. Collisions are as unlikely as UUID v4
// collisions.
func (UUIDGenerator) NextID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
