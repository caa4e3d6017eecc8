package queries

import (
	"math"

	"shareit/internal/pkg/errs"
)

const (
	DefaultFrom = 0
	DefaultSize = 10
)

type Page struct {
	from int
	size int
}

// NewPage converts an element index and a page size into a page. The index
// is rounded down to the page that contains it, except that any index within
// the first page size selects page 0.
func NewPage(from, size int) (Page, error) {
	if size < 1 {
		return Page{}, errs.Validationf("Page size must be greater than 0")
	}
	if size > math.MaxInt32 {
		return Page{}, errs.Validationf("Page size must be at most %d", math.MaxInt32)
	}
	if from < 0 {
		return Page{}, errs.Validationf("Index of element must be at least 0")
	}
	p := Page{from: from, size: size}
	// Limit and Offset are int32 query parameters.
	if int64(p.Index())*int64(size) > math.MaxInt32 {
		return Page{}, errs.Validationf("Index of element must be at most %d", math.MaxInt32)
	}
	return p, nil
}

func (p Page) Index() int {
	if p.from <= p.size-1 {
		return 0
	}
	return p.from / p.size
}

func (p Page) Limit() int32  { return int32(p.size) }
func (p Page) Offset() int32 { return int32(p.Index() * p.size) }
