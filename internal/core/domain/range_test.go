package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symtab/internal/core/domain"
)

func TestParseByteRange(t *testing.T) {
	r, err := domain.ParseByteRange("6:11")
	require.NoError(t, err)
	assert.Equal(t, domain.ByteRange{Start: 6, End: 11}, r)
	assert.Equal(t, "6:11", r.String())
}

func TestParseByteRange_Invalid(t *testing.T) {
	for _, s := range []string{"", "6", "6-11", "a:1", "1:b", "-1:2", "1:-2"} {
		t.Run(s, func(t *testing.T) {
			_, err := domain.ParseByteRange(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidRange)
		})
	}
}
