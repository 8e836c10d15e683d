package response

// Pagination describes one page of a list response. From/To are 1-based
// inclusive positions within the full result set.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination derives the page metadata for the window [from, to) of a
// result set with total items.
func NewPagination(page, pageSize, from, to int, total int64) *Pagination {
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from + 1,
		To:         to,
	}
}
