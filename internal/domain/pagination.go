package domain

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

type Pagination struct {
	Page  int
	Limit int
}

// NewPagination normalises raw page/limit values. Zero means "not given" and
// picks the default; everything else is clamped to page >= 1 and
// 1 <= limit <= MaxLimit.
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}

	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
