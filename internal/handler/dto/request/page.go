package request

import "shareit/internal/usecase/queries"

type PageQuery struct {
	From *int `form:"from"`
	Size *int `form:"size"`
}

// ToPage fills absent parameters with the defaults before validating.
func (q PageQuery) ToPage(defaultSize int) (queries.Page, error) {
	from, size := queries.DefaultFrom, defaultSize
	if q.From != nil {
		from = *q.From
	}
	if q.Size != nil {
		size = *q.Size
	}
	return queries.NewPage(from, size)
}
