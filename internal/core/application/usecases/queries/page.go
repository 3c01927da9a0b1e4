// Package queries contains the read side of the workflow. Handlers read straight from
// the database through GORM and return read models shaped for display.
package queries

import (
	"math"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	// DefaultPerPage is the page size used when a caller does not choose one.
	DefaultPerPage = 15
	// MaxPerPage caps caller-supplied page sizes.
	MaxPerPage = 100
	// MaxPage keeps the row offset of any page representable as an int.
	MaxPage = math.MaxInt/MaxPerPage + 1
)

// PageRequest selects one page of a listing. Pages are numbered from 1.
type PageRequest struct {
	Page    int
	PerPage int
}

// NewPageRequest clamps page to 1..MaxPage and perPage to 1..MaxPerPage, using
// DefaultPerPage when perPage is not positive.
func NewPageRequest(page, perPage int) PageRequest {
	switch {
	case page < 1:
		page = 1
	case page > MaxPage:
		page = MaxPage
	}
	switch {
	case perPage <= 0:
		perPage = DefaultPerPage
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	}
	return PageRequest{Page: page, PerPage: perPage}
}

func (p PageRequest) offset() int {
	return (p.Page - 1) * p.PerPage
}

// Page is one slice of a listing together with the totals needed to navigate it.
type Page[T any] struct {
	Items    []T   `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"current_page"`
	PerPage  int   `json:"per_page"`
	LastPage int   `json:"last_page"`
}

func newPage[T any](items []T, total int64, req PageRequest) Page[T] {
	lastPage := int((total + int64(req.PerPage) - 1) / int64(req.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		PerPage:  req.PerPage,
		LastPage: lastPage,
	}
}

// containsPattern turns free text into a case-insensitive LIKE pattern that matches
// it anywhere. LIKE wildcards in the text match literally.
func containsPattern(search string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(search))
	return "%" + escaped + "%"
}

// quoteColumn renders table.column quoted for the connection's dialect.
func quoteColumn(db *gorm.DB, table, column string) string {
	if db.Dialector.Name() == "mysql" {
		return "`" + table + "`.`" + column + "`"
	}
	return pq.QuoteIdentifier(table) + "." + pq.QuoteIdentifier(column)
}

// SortOrder names a listing column and a direction. An unknown column falls back to
// the listing's default order.
type SortOrder struct {
	Column string
	Desc   bool
}

func orderClause(db *gorm.DB, table string, sort SortOrder, allowed map[string]bool, fallback string) string {
	if !allowed[sort.Column] {
		return fallback
	}
	direction := " ASC"
	if sort.Desc {
		direction = " DESC"
	}
	return quoteColumn(db, table, sort.Column) + direction
}
