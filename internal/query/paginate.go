package query

// maxWindowItems is how many page numbers are shown at once.
const maxWindowItems = 10

// Page is one window of a collection plus the pager metadata needed to
// render page controls.
type Page[T any] struct {
	Items      []T
	Number     int // 1-indexed, clamped to the last valid page
	PerPage    int
	TotalItems int
	TotalPages int

	// Window is the visible page-number sequence, at most maxWindowItems
	// entries centered on Number and clamped to [1, TotalPages]. The
	// ellipsis flags say whether the window stops short of an edge.
	Window           []int
	LeadingEllipsis  bool
	TrailingEllipsis bool
}

// Paginate slices out the 1-indexed page of size perPage. A page past the end
// of the collection is clamped to the last valid page rather than coming back
// silently empty, since the collection may have shrunk under the pager.
func Paginate[T any](items []T, perPage, page int) Page[T] {
	if perPage < 1 {
		perPage = 1
	}

	totalItems := len(items)
	totalPages := (totalItems + perPage - 1) / perPage

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	var slice []T
	if totalPages > 0 {
		start := (page - 1) * perPage
		end := min(start+perPage, totalItems)
		slice = make([]T, end-start)
		copy(slice, items[start:end])
	}

	window, leading, trailing := pageWindow(page, totalPages)

	return Page[T]{
		Items:            slice,
		Number:           page,
		PerPage:          perPage,
		TotalItems:       totalItems,
		TotalPages:       totalPages,
		Window:           window,
		LeadingEllipsis:  leading,
		TrailingEllipsis: trailing,
	}
}

func pageWindow(current, totalPages int) (window []int, leading, trailing bool) {
	if totalPages < 1 {
		return nil, false, false
	}

	start := max(current-maxWindowItems/2, 1)
	end := min(start+maxWindowItems-1, totalPages)
	if end-start+1 < maxWindowItems {
		start = max(end-maxWindowItems+1, 1)
	}

	window = make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		window = append(window, i)
	}

	return window, start > 1, end < totalPages
}
