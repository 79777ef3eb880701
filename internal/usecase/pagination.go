package usecase

// defaultPageSize is used when a listing request carries no page size.
const defaultPageSize = 20

// Pagination summarizes one page of a listing. It is derived on every
// call and never stored.
type Pagination struct {
	Total      int `json:"total"`
	PageIndex  int `json:"page_index"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes the pagination block for a listing response.
// TotalPages is ceil(total/pageSize).
func NewPagination(total, pageIndex, pageSize int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Pagination{
		Total:      total,
		PageIndex:  pageIndex,
		TotalPages: totalPages,
	}
}
