package models

import "math"

const (
	MaxPageSize     = 100
	DefaultPageSize = 10
)

type Page struct {
	Number int
	Size   int
}

// NewPage clamps the number to >= 1 and the size to 1..MaxPageSize.
// A zero size falls back to defaultSize. The number is capped so Offset never overflows.
func NewPage(number, size, defaultSize int) Page {
	if number < 1 {
		number = 1
	}
	if size == 0 {
		size = defaultSize
	}
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if limit := math.MaxInt / size; number > limit {
		number = limit
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

type PageResult[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func NewPageResult[T any](items []T, page Page, total int) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := (total + page.Size - 1) / page.Size
	if totalPages < 1 {
		totalPages = 1
	}
	return PageResult[T]{
		Items:      items,
		Page:       page.Number,
		PageSize:   page.Size,
		Total:      total,
		TotalPages: totalPages,
	}
}
