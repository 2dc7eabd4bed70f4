package common

import "strconv"

const NullLiteral = "NULL"

// Value is an integer bound to a key, or the absence of one.
// The zero Value is absent, so a missing key and a deleted key read the same.
type Value struct {
	n       int64
	present bool
}

func Int(n int64) Value {
	return Value{n: n, present: true}
}

func Null() Value {
	return Value{}
}

// Int64 returns the integer and whether it is present.
func (v Value) Int64() (int64, bool) {
	return v.n, v.present
}

func (v Value) IsNull() bool {
	return !v.present
}

func (v Value) String() string {
	if !v.present {
		return NullLiteral
	}
	return strconv.FormatInt(v.n, 10)
}
