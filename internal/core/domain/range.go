package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ByteRange is a half-open byte range [Start, End).
type ByteRange struct {
	Start int
	End   int
}

// ParseByteRange parses a range written as "start:end".
func ParseByteRange(s string) (ByteRange, error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return ByteRange{}, invalidRange(s)
	}

	start, err := strconv.Atoi(from)
	if err != nil || start < 0 {
		return ByteRange{}, invalidRange(s)
	}
	end, err := strconv.Atoi(to)
	if err != nil || end < 0 {
		return ByteRange{}, invalidRange(s)
	}

	return ByteRange{Start: start, End: end}, nil
}

// String returns the range as "start:end".
func (r ByteRange) String() string {
	return strconv.Itoa(r.Start) + ":" + strconv.Itoa(r.End)
}

func invalidRange(s string) error {
	return zerr.With(zerr.Wrap(ErrInvalidRange, "cannot parse range"), "range", s)
}
