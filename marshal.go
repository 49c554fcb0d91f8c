package ffloat

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shabbyrobe/go-ffloat/fast"
)

// parse is the checked inverse of MarshalText. Out of range input is
// reported as an *InvariantError as it would otherwise round to Inf.
func parse[T fast.Float](op string, s string) (out FFloat[T], err error) {
	v, err := strconv.ParseFloat(s, fast.Width[T]())
	if errors.Is(err, strconv.ErrRange) && fast.Bad(v) {
		return out, &InvariantError{Value: v, Op: op}
	} else if err != nil {
		return out, fmt.Errorf("ffloat: %s %q invalid: %w", op, s, err)
	}
	out, err = NewChecked(T(v))
	if err != nil {
		err.(*InvariantError).Op = op
	}
	return out, err
}

func (f FFloat[T]) MarshalText() ([]byte, error) {
	f.check("marshal")
	return strconv.AppendFloat(nil, float64(f.v), 'g', -1, fast.Width[T]()), nil
}

// UnmarshalText parses a decimal float. NaN, Inf and values that overflow T
// are rejected with an *InvariantError.
func (f *FFloat[T]) UnmarshalText(bts []byte) (err error) {
	v, err := parse[T]("unmarshal", string(bts))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalJSON encodes f as a JSON number.
func (f FFloat[T]) MarshalJSON() ([]byte, error) {
	return f.MarshalText()
}

// UnmarshalJSON accepts a JSON number, or a number inside a JSON string.
func (f *FFloat[T]) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("ffloat: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return f.UnmarshalText(bts)
}
