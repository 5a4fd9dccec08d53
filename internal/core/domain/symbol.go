package domain

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"go.trai.ch/zerr"
)

// Symbol is a cheap reference to a string stored in a Table.
// It may be narrowed to a byte range of that string with Slice, without copying.
//
// Symbols are small values and are meant to be copied. Use Equal rather than ==
// to compare them: == compares handles, not content, and differs from Equal for slices.
// The zero Symbol is detached from any table and reads as "".
type Symbol struct {
	table  *Table
	index  uint32
	start  uint32
	end    uint32
	sliced bool
}

func newSymbol(t *Table, idx uint32) Symbol {
	return Symbol{table: t, index: idx}
}

// Table returns the table the symbol belongs to.
func (s Symbol) Table() *Table {
	return s.table
}

// Index returns the index of the referenced entry in its table.
func (s Symbol) Index() uint32 {
	return s.index
}

// IsSliced reports whether the symbol is restricted to a byte range of its entry.
func (s Symbol) IsSliced() bool {
	return s.sliced
}

// Range returns the absolute byte range into the referenced entry.
// ok is false for rooted symbols, which cover the whole entry.
func (s Symbol) Range() (start, end int, ok bool) {
	if !s.sliced {
		return 0, 0, false
	}
	return int(s.start), int(s.end), true
}

// Len returns the length in bytes of the text the symbol refers to.
func (s Symbol) Len() int {
	if s.sliced {
		return int(s.end) - int(s.start)
	}
	return len(s.root())
}

// String returns the referenced text: the whole entry, or the sliced part of it.
// The result shares memory with the table.
func (s Symbol) String() string {
	root := s.root()
	if !s.sliced {
		return root
	}
	if s.start > s.end || int(s.end) > len(root) {
		// Slice validates every range it hands out, so this is a forged or corrupted handle.
		err := zerr.With(zerr.Wrap(ErrCorruptSymbol, "cannot materialize symbol"), "index", s.index)
		err = zerr.With(err, "range", strconv.Itoa(int(s.start))+":"+strconv.Itoa(int(s.end)))
		panic(zerr.With(err, "entry_len", len(root)))
	}
	return root[s.start:s.end]
}

// GoString returns the referenced text as a quoted Go string literal.
func (s Symbol) GoString() string {
	return strconv.Quote(s.String())
}

// Clone returns a copy of the referenced text that does not share memory with the table.
func (s Symbol) Clone() string {
	return strings.Clone(s.String())
}

// EqualString reports whether the referenced text is byte-equal to text.
func (s Symbol) EqualString(text string) bool {
	return s.String() == text
}

// Equal reports whether both symbols refer to byte-equal text.
//
// Rooted symbols of the same table compare by index only. Slices fall back to
// comparing the bytes, since distinct ranges or entries may hold the same text.
func (s Symbol) Equal(other Symbol) bool {
	if s.table == other.table {
		if s.index == other.index {
			if s.sliced == other.sliced && s.start == other.start && s.end == other.end {
				return true
			}
			return s.String() == other.String()
		}
		if !s.sliced && !other.sliced {
			return false
		}
	}
	return s.String() == other.String()
}

// Slice narrows the symbol to the byte range [start, end) of its current text.
// It returns false if the range does not fit, is reversed, or splits a UTF-8 sequence.
//
// On an already sliced symbol the range is resolved against the entry as
// start' = s.start+start and end' = start'+end, and must not pass the current end.
func (s Symbol) Slice(start, end int) (Symbol, bool) {
	if start < 0 || end < 0 {
		return Symbol{}, false
	}
	if s.sliced {
		start += int(s.start)
		end += start
		if end > int(s.end) {
			return Symbol{}, false
		}
	}

	root := s.root()
	if start > end || end > len(root) || !isBoundary(root, start) || !isBoundary(root, end) {
		return Symbol{}, false
	}

	from, err := safecast.Conv[uint32](start)
	if err != nil {
		return Symbol{}, false
	}
	to, err := safecast.Conv[uint32](end)
	if err != nil {
		return Symbol{}, false
	}

	return Symbol{
		table:  s.table,
		index:  s.index,
		start:  from,
		end:    to,
		sliced: true,
	}, true
}

// Deslice turns a sliced symbol into a rooted one by interning its text.
// A rooted symbol is returned unchanged and the table is not touched.
func (s Symbol) Deslice() Symbol {
	if !s.sliced {
		return s
	}
	if s.table == nil {
		return Symbol{}
	}
	return s.table.Intern(s.String())
}

// MarshalText implements encoding.TextMarshaler.
// It returns the bytes of the referenced text.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s Symbol) root() string {
	if s.table == nil {
		return ""
	}
	return s.table.stringAt(s.index)
}

// isBoundary reports whether i is a valid cut point in text.
func isBoundary(text string, i int) bool {
	if i == len(text) {
		return true
	}
	return i >= 0 && i < len(text) && utf8.RuneStart(text[i])
}
