//go:build !ffloat_fast

package ffloat

// checked is true in the default build. Every construction and every
// operation that reads an FFloat validates it and panics on NaN or Inf.
const checked = true
