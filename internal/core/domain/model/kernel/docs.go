// Package kernel provides the shared domain primitives of the storefront:
//   - UUID: identifier value object for aggregates
//   - Location: a validated WGS84 coordinate pair
//   - NormalizePhone: canonical E.164 form of customer and store phone numbers
//
// The value objects are immutable and can only be built through their
// constructors; zero values fail validation.
package kernel
