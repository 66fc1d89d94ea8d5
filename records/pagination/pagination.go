package pagination

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// PageRequest selects a page of an already ordered sequence.
// Page numbers start at 1.
type PageRequest struct {
	Page     int
	PageSize int
}

// Page is the envelope returned to callers. Count is the total number of
// items across all pages, not the number of items on this page.
type Page[T any] struct {
	Count    int
	Page     int
	PageSize int
	Items    []T
}

// Paginate slices items into the requested page. A page number below 1
// defaults to the first page, a page size outside (0, MaxPageSize] is
// clamped and a page past the end yields an empty item list.
func Paginate[T any](items []T, req PageRequest) Page[T] {
	page := req.Page
	if page < 1 {
		page = 1
	}

	size := req.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	result := Page[T]{
		Count:    len(items),
		Page:     page,
		PageSize: size,
		Items:    []T{},
	}

	offset := (page - 1) * size
	if offset < len(items) {
		end := offset + size
		if end > len(items) {
			end = len(items)
		}
		result.Items = items[offset:end]
	}

	return result
}
