//go:build ffloat_fast

package ffloat

// checked is false when built with -tags ffloat_fast. Validation is
// skipped entirely; an FFloat holding NaN or Inf is out of contract and
// every result derived from it is unspecified.
const checked = false
