package loop

import (
	"strconv"
	"strings"
)

// Parser converts trimmed text into an integer of the caller's choosing.
type Parser[T any] func(text string) (T, error)

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ParseSigned parses base-10 text into T, rejecting values T cannot hold.
func ParseSigned[T Signed](text string) (T, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, err
	}
	t := T(v)
	if int64(t) != v {
		return 0, &strconv.NumError{Func: "ParseInt", Num: text, Err: strconv.ErrRange}
	}
	return t, nil
}

// ParseUnsigned parses base-10 text into T. A single leading '+' is accepted; '-' is not.
func ParseUnsigned[T Unsigned](text string) (T, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 64)
	if err != nil {
		return 0, &strconv.NumError{Func: "ParseUint", Num: text, Err: unwrapNum(err)}
	}
	t := T(v)
	if uint64(t) != v {
		return 0, &strconv.NumError{Func: "ParseUint", Num: text, Err: strconv.ErrRange}
	}
	return t, nil
}

func unwrapNum(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
