// Package bigint wraps math/big for values Discord sends as decimal
// strings that can overflow the 53-bit safe-integer range of clients
// (guild permission bitfields in particular).
package bigint

import (
	"fmt"
	"math/big"
)

type BigInt struct {
	big.Int
}

// FromString parses a base-10 string into a BigInt.
func FromString(s string) (BigInt, error) {
	var b BigInt

	if _, ok := b.SetString(s, 10); !ok {
		return BigInt{}, fmt.Errorf("not a valid big integer: %s", s)
	}

	return b, nil
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	return []byte("\"" + b.String() + "\""), nil
}

func (b *BigInt) UnmarshalJSON(p []byte) error {
	if len(p) == 0 || string(p) == "null" {
		return nil
	}

	if p[0] == '"' {
		if len(p) == 1 {
			return fmt.Errorf("invalid big integer [len(p) == 1]: %s", p)
		}

		// Ensure last char is a "
		if p[len(p)-1] != '"' {
			return fmt.Errorf("invalid big integer: %s", p)
		}

		p = p[1 : len(p)-1]
	}

	var z big.Int
	_, ok := z.SetString(string(p), 10)
	if !ok {
		return fmt.Errorf("not a valid big integer: %s", p)
	}
	b.Int = z
	return nil
}

// HasBit reports whether the given permission bit is set.
func (b *BigInt) HasBit(bit int64) bool {
	var mask big.Int
	mask.SetInt64(bit)
	mask.And(&mask, &b.Int)
	return mask.Sign() != 0
}
