package query

import (
	"errors"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"hypergo-properties/internal/models"
)

// Canonicalize never fails: malformed or unknown values are dropped.
func Canonicalize(params url.Values) CanonicalFilter {
	f := CanonicalFilter{
		Sort:  Sort{Field: DefaultSortField, Direction: Descending},
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}

	category := first(params, "category")
	if category == "" {
		category = first(params, "type")
	}
	f.Category = matchEnum(category, models.PropertyTypes)
	f.Furnished = matchEnum(first(params, "furnished"), models.FurnishedStates)
	f.ListingType = matchEnum(first(params, "listingType"), models.ListingTypes)

	f.State = first(params, "state")
	f.City = first(params, "city")

	f.Price = Range{Min: parseFloat(first(params, "minPrice")), Max: parseFloat(first(params, "maxPrice"))}
	f.Area = Range{Min: parseFloat(first(params, "minArea")), Max: parseFloat(first(params, "maxArea"))}

	f.Bedrooms = parseCount(first(params, "bedrooms"))
	f.Bathrooms = parseCount(first(params, "bathrooms"))

	f.Amenities = amenityTokens(params["amenities"])

	if field, ok := SortableFields[strings.ToLower(first(params, "sortBy"))]; ok {
		f.Sort = Sort{Field: field, Direction: Ascending}
		if strings.EqualFold(first(params, "sortOrder"), "desc") {
			f.Sort.Direction = Descending
		}
	}

	f.Page = parsePage(first(params, "page"))
	if limit, err := strconv.Atoi(first(params, "limit")); err == nil && limit >= 1 {
		f.Limit = min(limit, MaxLimit)
	}

	return f
}

// parsePage clamps pages past MaxPage, including ones too large for int.
// Such a page is simply past the end of any result set.
func parsePage(s string) int {
	page, err := strconv.Atoi(s)
	switch {
	case err == nil && page >= 1:
		return min(page, MaxPage)
	case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(s, "-"):
		return MaxPage
	}
	return DefaultPage
}

// first returns the first non-blank value for name, trimmed.
func first(params url.Values, name string) string {
	for _, v := range params[name] {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func matchEnum(value string, allowed []string) string {
	if value == "" {
		return ""
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return a
		}
	}
	return ""
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return &v
}

func parseCount(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// amenityTokens splits every value on the amenity separator, then lower-cases, dedupes and sorts.
func amenityTokens(values []string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, v := range values {
		for _, t := range strings.Split(v, models.AmenitySeparator) {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" {
				continue
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			tokens = append(tokens, t)
		}
	}
	sort.Strings(tokens)
	return tokens
}
