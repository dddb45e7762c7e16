// Package uuid hands out the identifiers for attack attempts, authority
// commands and prompt tokens. Services take a Generator so tests can pin ids.
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator returns random (version 4) UUID strings
type GoogleUUIDGenerator struct{}

// New implements Generator
func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}

// NewGoogleUUIDGenerator creates the production generator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func() string

// New implements Generator
func (f GeneratorFunc) New() string {
	return f()
}
