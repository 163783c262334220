// Package kernel provides the value objects shared by every parcelhub aggregate.
//
// The package includes:
//   - UUID: entity identifier that rejects the nil UUID
//   - Money: exact decimal amount with a single rounding rule (half-up to the minor unit)
//   - Email: normalized address used as the cross-aggregate join key
//
// All three are immutable and safe for concurrent use.
package kernel
