package dto

type Pagination[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"totalItems"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

func NewPagination[T any](items []T, total, page, size int) *Pagination[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if size > 0 {
		pages = (total + size - 1) / size
	}
	return &Pagination[T]{
		Items:      items,
		TotalItems: total,
		PageNumber: page,
		PageSize:   size,
		TotalPages: pages,
	}
}
