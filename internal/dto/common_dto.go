package dto

// TimeLayout layout of timestamps in responses
const TimeLayout = "2006-01-02T15:04:05Z07:00"

// Pagination page request
type Pagination struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

// Normalize clamps page and per_page to sane values
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 20
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// Offset row offset of the page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}
