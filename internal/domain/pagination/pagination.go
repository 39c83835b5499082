// Package pagination carries page metadata of list queries.
package pagination

// Page describes one page of a paginated result
type Page struct {
	Page  int
	Limit int
	Total int64
	Pages int
}

// NewPage computes page metadata; Pages is zero for an empty result.
func NewPage(page, limit int, total int64) Page {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Page{Page: page, Limit: limit, Total: total, Pages: pages}
}

// HasNext reports whether a page follows this one
func (p Page) HasNext() bool {
	return p.Page < p.Pages
}

// Offset returns the row offset of a 1-indexed page
func Offset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
