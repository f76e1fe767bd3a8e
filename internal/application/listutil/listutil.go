// Package listutil holds the page arithmetic shared by paginated list
// views.
package listutil

import (
	"net/url"
	"strconv"
)

// DefaultPerPage is the page size used when the request does not ask
// for one.
const DefaultPerPage = 20

// perPageChoices are the page sizes a request may ask for.
var perPageChoices = []int{10, 20, 50, 100}

// PageParams carries the pagination inputs parsed from a request.
type PageParams struct {
	Page    int // 1-indexed
	PerPage int
}

// ParsePageParams reads page and per_page from query values, falling
// back to page 1 and DefaultPerPage for anything absent, junk, or not
// an allowed page size.
func ParsePageParams(q url.Values) PageParams {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(q.Get("per_page"))
	if err != nil || !allowedPerPage(perPage) {
		perPage = DefaultPerPage
	}
	return PageParams{Page: page, PerPage: perPage}
}

// PageInfo is the resolved pagination state for one rendered page.
type PageInfo struct {
	Page       int // current page, 1-indexed
	PerPage    int
	Total      int // matching rows across all pages
	TotalPages int
}

// NewPageInfo resolves the requested page against the row count.
// PRE: total >= 0
// POST: Page lies in [1, TotalPages]; TotalPages >= 1
func NewPageInfo(page, perPage, total int) PageInfo {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	switch {
	case page > pages:
		page = pages
	case page < 1:
		page = 1
	}
	return PageInfo{Page: page, PerPage: perPage, Total: total, TotalPages: pages}
}

// Offset returns the number of rows to skip for the current page.
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PageNumbers returns up to five page numbers windowed around the
// current page, for the pagination controls.
func (p PageInfo) PageNumbers() []int {
	const window = 5
	first := p.Page - window/2
	if first < 1 {
		first = 1
	}
	last := first + window - 1
	if last > p.TotalPages {
		last = p.TotalPages
		if first = last - window + 1; first < 1 {
			first = 1
		}
	}
	nums := make([]int, 0, last-first+1)
	for n := first; n <= last; n++ {
		nums = append(nums, n)
	}
	return nums
}

// ShowPagination reports whether the controls are worth rendering:
// only when the rows spill past a single page.
func (p PageInfo) ShowPagination() bool {
	return p.TotalPages > 1
}

func allowedPerPage(n int) bool {
	for _, c := range perPageChoices {
		if n == c {
			return true
		}
	}
	return false
}
