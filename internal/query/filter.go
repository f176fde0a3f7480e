// Package query turns raw search parameters into a canonical, cacheable filter.
package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit within int for every allowed limit.
	MaxPage = math.MaxInt / MaxLimit

	DefaultSortField = "createdAt"
)

const (
	Ascending  = 1
	Descending = -1
)

// SortableFields maps lower-cased parameter values to stored field names.
var SortableFields = map[string]string{
	"price":         "price",
	"areasqft":      "areaSqFt",
	"bedrooms":      "bedrooms",
	"bathrooms":     "bathrooms",
	"rating":        "rating",
	"createdat":     "createdAt",
	"updatedat":     "updatedAt",
	"availablefrom": "availableFrom",
	"title":         "title",
}

// Range is a closed interval; a nil bound is unbounded.
type Range struct {
	Min *float64
	Max *float64
}

func (r Range) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

func (r Range) encode() string {
	return "[" + encodeBound(r.Min) + "," + encodeBound(r.Max) + "]"
}

func encodeBound(v *float64) string {
	if v == nil {
		return "*"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

type Sort struct {
	Field     string
	Direction int
}

// CanonicalFilter is the normalized form of a search request.
// Two requests with the same meaning produce equal filters and equal Encode output.
type CanonicalFilter struct {
	Category    string
	Price       Range
	State       string
	City        string
	Area        Range
	Bedrooms    *int
	Bathrooms   *int
	Furnished   string
	Amenities   []string
	ListingType string
	Sort        Sort
	Page        int
	Limit       int
}

// Skip is the number of records before the requested page.
func (f CanonicalFilter) Skip() int {
	return (f.Page - 1) * f.Limit
}

// TotalPages is ceil(total/limit).
func (f CanonicalFilter) TotalPages(total int64) int {
	if total <= 0 || f.Limit <= 0 {
		return 0
	}
	limit := int64(f.Limit)
	return int((total + limit - 1) / limit)
}

// Encode renders the filter in a fixed field order. Absent dimensions are omitted.
func (f CanonicalFilter) Encode() string {
	var b strings.Builder
	write := func(name, value string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
	}

	if f.Category != "" {
		write("category", f.Category)
	}
	if !f.Price.IsZero() {
		write("price", f.Price.encode())
	}
	if f.State != "" {
		write("state", url.QueryEscape(f.State))
	}
	if f.City != "" {
		write("city", url.QueryEscape(f.City))
	}
	if !f.Area.IsZero() {
		write("area", f.Area.encode())
	}
	if f.Bedrooms != nil {
		write("bedrooms", strconv.Itoa(*f.Bedrooms))
	}
	if f.Bathrooms != nil {
		write("bathrooms", strconv.Itoa(*f.Bathrooms))
	}
	if f.Furnished != "" {
		write("furnished", f.Furnished)
	}
	if len(f.Amenities) > 0 {
		escaped := make([]string, len(f.Amenities))
		for i, a := range f.Amenities {
			escaped[i] = url.QueryEscape(a)
		}
		write("amenities", strings.Join(escaped, ","))
	}
	if f.ListingType != "" {
		write("listingType", f.ListingType)
	}
	dir := "asc"
	if f.Sort.Direction == Descending {
		dir = "desc"
	}
	write("sort", f.Sort.Field+":"+dir)
	write("page", strconv.Itoa(f.Page))
	write("limit", strconv.Itoa(f.Limit))
	return b.String()
}
