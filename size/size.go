package size

import (
	"math/big"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/dustin/go-humanize"
)

// Size is an arbitrary-precision byte quantity. The zero value is zero
// bytes. Values are immutable; arithmetic returns fresh values.
type Size struct {
	i big.Int
}

func New(bytes uint64) Size {
	var s Size
	s.i.SetUint64(bytes)
	return s
}

// Parse accepts human-readable byte quantities such as "10 MiB" or "42GB".
func Parse(str string) (Size, error) {
	b, err := humanize.ParseBigBytes(str)
	if err != nil {
		return Size{}, bosherr.WrapErrorf(err, "Parsing size '%s'", str)
	}

	var s Size
	s.i.Set(b)
	return s, nil
}

// Bytes returns the quantity as a big integer. The result is a copy.
func (s Size) Bytes() *big.Int {
	return new(big.Int).Set(&s.i)
}

func (s Size) Add(o Size) Size {
	var r Size
	r.i.Add(&s.i, &o.i)
	return r
}

func (s Size) Sub(o Size) Size {
	var r Size
	r.i.Sub(&s.i, &o.i)
	return r
}

// Cmp returns -1, 0, or 1 depending on whether s is less than, equal to,
// or greater than o.
func (s Size) Cmp(o Size) int {
	return s.i.Cmp(&o.i)
}

func (s Size) Eq(o Size) bool { return s.Cmp(o) == 0 }
func (s Size) Lt(o Size) bool { return s.Cmp(o) < 0 }
func (s Size) Gt(o Size) bool { return s.Cmp(o) > 0 }

func (s Size) IsZero() bool {
	return s.i.Sign() == 0
}

// String formats the quantity with an IEC unit suffix, e.g. "10 MiB".
func (s Size) String() string {
	return humanize.BigIBytes(s.Bytes())
}
