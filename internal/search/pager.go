package search

const PageSize = 10

type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
}

// TotalPages retorna ceil(count/PageSize), no mínimo 1
func TotalPages(count int) int {
	if count <= 0 {
		return 1
	}
	return (count + PageSize - 1) / PageSize
}

// ClampPage limita a página a [1, TotalPages(count)]
func ClampPage(page, count int) int {
	if page < 1 {
		return 1
	}
	if total := TotalPages(count); page > total {
		return total
	}
	return page
}

// Paginate devolve a fatia [(page-1)*PageSize, page*PageSize) com a página já limitada
func Paginate[T any](items []T, page int) Page[T] {
	page = ClampPage(page, len(items))

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}

	slice := make([]T, 0, end-start)
	slice = append(slice, items[start:end]...)

	return Page[T]{
		Items:      slice,
		Page:       page,
		TotalPages: TotalPages(len(items)),
		Total:      len(items),
	}
}
