package domain_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symtab/internal/core/domain"
)

func TestSymbol_Slice(t *testing.T) {
	table := domain.NewTable()
	hw := table.Intern("hello world")

	tests := []struct {
		name       string
		start, end int
		want       string
		ok         bool
	}{
		{name: "prefix", start: 0, end: 5, want: "hello", ok: true},
		{name: "suffix", start: 6, end: 11, want: "world", ok: true},
		{name: "empty", start: 3, end: 3, want: "", ok: true},
		{name: "whole", start: 0, end: 11, want: "hello world", ok: true},
		{name: "past end", start: 12, end: 16},
		{name: "end past length", start: 6, end: 12},
		{name: "reversed", start: 5, end: 2},
		{name: "negative start", start: -1, end: 2},
		{name: "negative end", start: 0, end: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, ok := hw.Slice(tt.start, tt.end)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Equal(t, domain.Symbol{}, sym)
				return
			}
			assert.Equal(t, tt.want, sym.String())
			assert.True(t, sym.IsSliced())
			assert.Equal(t, hw.Index(), sym.Index())
		})
	}

	assert.Equal(t, 1, table.Len(), "slicing must not touch the table")
}

func TestSymbol_SliceRejectsSplitRunes(t *testing.T) {
	table := domain.NewTable()
	sym := table.Intern("héllo")

	_, ok := sym.Slice(0, 2)
	assert.False(t, ok, "2 falls inside the two-byte é")

	_, ok = sym.Slice(2, 4)
	assert.False(t, ok)

	e, ok := sym.Slice(1, 3)
	require.True(t, ok)
	assert.Equal(t, "é", e.String())
}

func TestSymbol_NestedSlices(t *testing.T) {
	table := domain.NewTable()
	hw := table.Intern("hello world!")

	world, ok := hw.Slice(6, 11)
	require.True(t, ok)
	assert.Equal(t, "world", world.String())

	orl, ok := world.Slice(1, 3)
	require.True(t, ok)
	assert.Equal(t, "orl", orl.String())

	start, end, ok := orl.Range()
	require.True(t, ok)
	assert.Equal(t, 7, start)
	assert.Equal(t, 10, end)

	_, ok = world.Slice(1, 5)
	assert.False(t, ok, "the range can't go out of bounds into the original string")
}

func TestSymbol_Range(t *testing.T) {
	table := domain.NewTable()
	hw := table.Intern("hello world")

	_, _, ok := hw.Range()
	assert.False(t, ok)

	world, ok := hw.Slice(6, 11)
	require.True(t, ok)
	start, end, ok := world.Range()
	require.True(t, ok)
	assert.Equal(t, 6, start)
	assert.Equal(t, 11, end)
	assert.Equal(t, 5, world.Len())
	assert.Equal(t, 11, hw.Len())
}

func TestSymbol_SliceEquality(t *testing.T) {
	table := domain.NewTable()
	hw1 := table.Intern("hello world 1")
	hw2 := table.Intern("hello world 2")

	assert.False(t, hw1.Equal(hw2), "the original strings are different")

	hello1, _ := hw1.Slice(0, 5)
	world1, _ := hw1.Slice(6, 11)
	hello2, _ := hw2.Slice(0, 5)
	world2, _ := hw2.Slice(6, 11)

	assert.True(t, hello1.Equal(hello2), "slices are compared by content")
	assert.True(t, world1.Equal(world2), "slices are compared by content")

	assert.True(t, hello1.Equal(table.Intern("hello")), "slices compare with rooted symbols")
	assert.True(t, table.Intern("world").Equal(world1), "rooted symbols compare with slices")

	hellos := table.Intern("hello hello world")
	a, _ := hellos.Slice(0, 5)
	b, _ := hellos.Slice(6, 11)
	w, _ := hellos.Slice(12, 17)

	assert.True(t, a.Equal(b), "different slices of the same entry are compared by content")
	assert.False(t, a.Equal(w))
}

func TestSymbol_EqualSameEntry(t *testing.T) {
	table := domain.NewTable()
	aa := table.Intern("aa")

	first, _ := aa.Slice(0, 1)
	second, _ := aa.Slice(1, 2)
	whole, _ := aa.Slice(0, 2)

	assert.True(t, first.Equal(second))
	assert.True(t, whole.Equal(aa), "a full-length slice equals its root")
	assert.False(t, first.Equal(aa))
}

func TestSymbol_EqualAcrossTables(t *testing.T) {
	left := domain.NewTable()
	right := domain.NewTable()

	a := left.Intern("same")
	right.Intern("padding")
	b := right.Intern("same")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(right.Intern("other")))

	// Equal indices in different tables must not short-circuit.
	z := domain.NewTable().Intern("z")
	require.Equal(t, a.Index(), z.Index())
	assert.False(t, a.Equal(z))
}

func TestSymbol_EqualString(t *testing.T) {
	table := domain.NewTable()
	hw := table.Intern("hello world")
	hello, _ := hw.Slice(0, 5)

	assert.True(t, hw.EqualString("hello world"))
	assert.True(t, hello.EqualString("hello"))
	assert.False(t, hello.EqualString("hello world"))
}

func TestSymbol_Deslice(t *testing.T) {
	table := domain.NewTable()
	hw := table.Intern("hello world")
	hello, ok := hw.Slice(0, 5)
	require.True(t, ok)

	assert.True(t, table.Contains("hello world"))
	assert.False(t, table.Contains("hello"))
	require.Equal(t, 1, table.Len())

	rooted := hello.Deslice()

	assert.True(t, table.Contains("hello"))
	assert.Equal(t, 2, table.Len())
	assert.False(t, rooted.IsSliced())
	assert.Equal(t, "hello", rooted.String())
	assert.NotEqual(t, hw.Index(), rooted.Index())
}

func TestSymbol_DesliceExisting(t *testing.T) {
	table := domain.NewTable()
	hello := table.Intern("hello")
	hw := table.Intern("hello world")
	slice, _ := hw.Slice(0, 5)

	rooted := slice.Deslice()

	assert.Equal(t, 2, table.Len(), "an existing entry is reused")
	assert.Equal(t, hello.Index(), rooted.Index())
	assert.Equal(t, hello, rooted, "desliced symbol is the same handle as the interned one")
}

func TestSymbol_DesliceRootedIsIdentity(t *testing.T) {
	table := domain.NewTable()
	hello := table.Intern("hello")

	again := hello.Deslice()

	assert.Equal(t, hello, again)
	assert.True(t, hello.Equal(again))
	assert.Equal(t, 1, table.Len())
}

func TestSymbol_ZeroValue(t *testing.T) {
	var sym domain.Symbol

	assert.Empty(t, sym.String())
	assert.Equal(t, 0, sym.Len())
	assert.False(t, sym.IsSliced())
	assert.Nil(t, sym.Table())
	assert.Equal(t, sym, sym.Deslice())
	assert.True(t, sym.Equal(domain.Symbol{}))
	assert.True(t, sym.Equal(domain.NewTable().Intern("")))
	assert.False(t, sym.Equal(domain.NewTable().Intern("x")))
}

func TestSymbol_Formatting(t *testing.T) {
	table := domain.NewTable()
	sym := table.Intern("say \"hi\"")
	hi, _ := sym.Slice(5, 7)

	assert.Equal(t, `say "hi"`, fmt.Sprint(sym))
	assert.Equal(t, `"say \"hi\""`, fmt.Sprintf("%#v", sym))
	assert.Equal(t, `"hi"`, fmt.Sprintf("%q", hi))
	assert.Equal(t, `say "hi"`, sym.Clone())
}

func TestSymbol_MarshalText(t *testing.T) {
	table := domain.NewTable()
	hw := table.Intern("hello world")
	world, _ := hw.Slice(6, 11)

	type payload struct {
		Name  domain.Symbol `json:"name"`
		Slice domain.Symbol `json:"slice"`
	}

	data, err := json.Marshal(payload{Name: hw, Slice: world})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"hello world","slice":"world"}`, string(data))
}

func TestSymbol_UseAsMapKey(t *testing.T) {
	table := domain.NewTable()
	counts := make(map[domain.Symbol]int)

	for _, w := range []string{"a", "b", "a", "a"} {
		counts[table.Intern(w)]++
	}

	assert.Equal(t, 3, counts[table.Intern("a")])
	assert.Equal(t, 1, counts[table.Intern("b")])
}
