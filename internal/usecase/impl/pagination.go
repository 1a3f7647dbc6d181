package impl

import "souk/internal/usecase"

const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

// pageWindow is the normalized pagination arithmetic for one search.
type pageWindow struct {
	page       int
	perPage    int
	totalPages int
	offset     int
}

// paginate normalizes the requested page/perPage against the total
// count. perPage is clamped to [1,100]; a page beyond the last one is
// silently clamped to the last page rather than erroring. With zero
// matches the window reports page 1 of 0 pages.
func paginate(req usecase.PageRequest, total int64) pageWindow {
	perPage := req.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	page := req.Page
	if page < defaultPage {
		page = defaultPage
	}

	if total == 0 {
		return pageWindow{page: defaultPage, perPage: perPage}
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if page > totalPages {
		page = totalPages
	}

	return pageWindow{
		page:       page,
		perPage:    perPage,
		totalPages: totalPages,
		offset:     (page - 1) * perPage,
	}
}
