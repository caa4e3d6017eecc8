//go:build unit

package request_test

import (
	"testing"

	"shareit/internal/handler/dto/request"
	"shareit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestPageQuery_ToPage(t *testing.T) {
	tests := []struct {
		name       string
		query      request.PageQuery
		wantLimit  int32
		wantOffset int32
		wantErr    string
	}{
		{name: "defaults", query: request.PageQuery{}, wantLimit: 7, wantOffset: 0},
		{name: "explicit", query: request.PageQuery{From: intPtr(25), Size: intPtr(10)}, wantLimit: 10, wantOffset: 20},
		{name: "from only", query: request.PageQuery{From: intPtr(14)}, wantLimit: 7, wantOffset: 14},
		{name: "zero size", query: request.PageQuery{Size: intPtr(0)}, wantErr: "Page size must be greater than 0"},
		{name: "negative from", query: request.PageQuery{From: intPtr(-1)}, wantErr: "Index of element must be at least 0"},
		{name: "size beyond int32", query: request.PageQuery{Size: intPtr(1 << 31)}, wantErr: "Page size must be at most 2147483647"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := tt.query.ToPage(7)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, errs.KindValidation, errs.KindOf(err))
				assert.Equal(t, tt.wantErr, errs.Message(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, page.Limit())
			assert.Equal(t, tt.wantOffset, page.Offset())
		})
	}
}
