package domain

// PaginationParams selects one page of the event listing. Page is 1-based.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset is the number of events skipped before this page.
func (p PaginationParams) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// PageCount reports how many pages total events span at this page size.
func (p PaginationParams) PageCount(total int) int {
	if p.PageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}
