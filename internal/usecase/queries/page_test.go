//go:build unit

package queries_test

import (
	"math"
	"testing"

	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		from, size int
		wantLimit  int32
		wantOffset int32
	}{
		{name: "defaults", from: 0, size: 10, wantLimit: 10, wantOffset: 0},
		{name: "index inside the first page", from: 9, size: 10, wantLimit: 10, wantOffset: 0},
		{name: "index on a page boundary", from: 10, size: 10, wantLimit: 10, wantOffset: 10},
		{name: "index rounds down to its page", from: 25, size: 10, wantLimit: 10, wantOffset: 20},
		{name: "page of one", from: 3, size: 1, wantLimit: 1, wantOffset: 3},
		{name: "largest size", from: 0, size: math.MaxInt32, wantLimit: math.MaxInt32, wantOffset: 0},
		{name: "largest index", from: math.MaxInt32, size: 1, wantLimit: 1, wantOffset: math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := queries.NewPage(tt.from, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, p.Limit())
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}

func TestNewPage_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		from, size int
		wantMsg    string
	}{
		{name: "size below one", from: 0, size: 0, wantMsg: "Page size must be greater than 0"},
		{name: "negative index", from: -1, size: 10, wantMsg: "Index of element must be at least 0"},
		{name: "size is checked first", from: -1, size: 0, wantMsg: "Page size must be greater than 0"},
		{name: "size beyond int32", from: 0, size: math.MaxInt32 + 1, wantMsg: "Page size must be at most 2147483647"},
		{name: "offset beyond int32", from: 1 << 40, size: 10, wantMsg: "Index of element must be at most 2147483647"},
		{name: "index past int32 with a page of one", from: math.MaxInt32 + 1, size: 1, wantMsg: "Index of element must be at most 2147483647"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewPage(tt.from, tt.size)
			require.Error(t, err)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
			assert.Equal(t, tt.wantMsg, errs.Message(err))
		})
	}
}
