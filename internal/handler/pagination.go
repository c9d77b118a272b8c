package handler

// PaginationMeta defines the structure for pagination metadata.
type PaginationMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// PaginatedResponse defines the structure for a paginated list of any type.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResponse creates a new PaginatedResponse.
func NewPaginatedResponse[T any](data []T, totalItems int64, page, limit int) PaginatedResponse[T] {
	if limit <= 0 {
		limit = 1
	}
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			TotalItems:  totalItems,
			TotalPages:  (int(totalItems) + limit - 1) / limit,
			CurrentPage: page,
			PageSize:    limit,
		},
	}
}

// pageParams parses page/limit query values with the shared defaults and cap.
func pageParams(pageStr, limitStr string) (page, limit, offset int) {
	page = atoiDefault(pageStr, 1)
	if page < 1 {
		page = 1
	}
	limit = atoiDefault(limitStr, 10)
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}
	return page, limit, (page - 1) * limit
}
