package ffloat

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
)

// ErrInvariant is matched by every *InvariantError.
var ErrInvariant = errors.New("ffloat: value is NaN or Inf")

// InvariantError describes a value that broke the never-NaN, never-Inf
// invariant. In strict mode it is the panic value; NewChecked and the
// unmarshallers return it.
type InvariantError struct {
	// Value is the offending value, widened to float64. Widening preserves
	// NaN and both infinities.
	Value float64

	// Op names the operation that produced or received the value.
	Op string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ffloat: %s: %s is NaN | INF", e.Op, strconv.FormatFloat(e.Value, 'g', -1, 64))
}

func (e *InvariantError) Is(target error) bool { return target == ErrInvariant }

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger installs the logger that strict mode reports violations to
// before panicking. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// violation is out of line so that check inlines.
//
//go:noinline
func violation(op string, v float64) {
	err := &InvariantError{Value: v, Op: op}
	logger.Load().Error("float invariant violated",
		zap.String("op", op),
		zap.Float64("value", v),
	)
	panic(err)
}
