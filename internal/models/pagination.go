package models

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Page struct {
	Page  int
	Limit int
}

// Normalize clamps limit to 1..MaxPageSize and page to >=1, capping page so that
// page*limit stays within int32 and the offset never overflows.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if maxPage := math.MaxInt32 / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PageResult[T any] struct {
	Items   []T
	Total   int
	Page    int
	Limit   int
	HasNext bool
	HasPrev bool
}

func NewPageResult[T any](items []T, total int, p Page) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return PageResult[T]{
		Items:   items,
		Total:   total,
		Page:    p.Page,
		Limit:   p.Limit,
		HasNext: p.Offset()+p.Limit < total,
		HasPrev: p.Offset() > 0,
	}
}
