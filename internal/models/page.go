package models

import "fmt"

// PageBounds declares the accepted limit range and default for a listing.
type PageBounds struct {
	MinLimit     int64
	MaxLimit     int64
	DefaultLimit int64
}

var (
	NewsPageBounds      = PageBounds{MinLimit: 1, MaxLimit: 50, DefaultLimit: 10}
	GuestbookPageBounds = PageBounds{MinLimit: 1, MaxLimit: 100, DefaultLimit: 20}
	ContactPageBounds   = PageBounds{MinLimit: 1, MaxLimit: 100, DefaultLimit: 50}
)

// ListCap bounds the unpaginated collection listings.
const ListCap = 100

// Page is a validated limit/offset pair.
type Page struct {
	Limit  int64
	Offset int64
}

// PageQuery is the bound form of the limit/offset query parameters; nil
// means the parameter was not given.
type PageQuery struct {
	Limit  *int64 `form:"limit"`
	Offset *int64 `form:"offset"`
}

// Page checks q against the bounds and fills in defaults. Values outside the
// bounds are rejected, not clamped.
func (b PageBounds) Page(q PageQuery) (Page, error) {
	p := Page{Limit: b.DefaultLimit}
	var errs []FieldError
	if q.Limit != nil {
		checkVar(&errs, "limit", *q.Limit, fmt.Sprintf("min=%d,max=%d", b.MinLimit, b.MaxLimit))
		p.Limit = *q.Limit
	}
	if q.Offset != nil {
		checkVar(&errs, "offset", *q.Offset, "min=0")
		p.Offset = *q.Offset
	}
	if len(errs) > 0 {
		return Page{}, &ValidationError{Fields: errs}
	}
	return p, nil
}
