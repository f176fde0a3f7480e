package query

import (
	"cmp"
	"strings"

	"hypergo-properties/internal/models"
)

// Matches reports whether p satisfies every present dimension of f.
// Amenity tokens are disjunctive and match case-insensitively anywhere in the amenity string.
func (f CanonicalFilter) Matches(p *models.Property) bool {
	if f.Category != "" && p.Type != f.Category {
		return false
	}
	if f.State != "" && p.State != f.State {
		return false
	}
	if f.City != "" && p.City != f.City {
		return false
	}
	if f.Furnished != "" && p.Furnished != f.Furnished {
		return false
	}
	if f.ListingType != "" && p.ListingType != f.ListingType {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms != *f.Bedrooms {
		return false
	}
	if f.Bathrooms != nil && p.Bathrooms != *f.Bathrooms {
		return false
	}
	if !f.Price.Contains(p.Price) || !f.Area.Contains(p.AreaSqFt) {
		return false
	}
	if len(f.Amenities) > 0 {
		amenities := strings.ToLower(p.Amenities)
		found := false
		for _, token := range f.Amenities {
			if strings.Contains(amenities, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Compare orders two listings by the filter's sort, breaking ties on the store id.
func (f CanonicalFilter) Compare(a, b *models.Property) int {
	var c int
	switch f.Sort.Field {
	case "price":
		c = cmp.Compare(a.Price, b.Price)
	case "areaSqFt":
		c = cmp.Compare(a.AreaSqFt, b.AreaSqFt)
	case "bedrooms":
		c = cmp.Compare(a.Bedrooms, b.Bedrooms)
	case "bathrooms":
		c = cmp.Compare(a.Bathrooms, b.Bathrooms)
	case "rating":
		c = cmp.Compare(a.Rating, b.Rating)
	case "updatedAt":
		c = a.UpdatedAt.Compare(b.UpdatedAt)
	case "availableFrom":
		c = a.AvailableFrom.Compare(b.AvailableFrom)
	case "title":
		c = cmp.Compare(a.Title, b.Title)
	default:
		c = a.CreatedAt.Compare(b.CreatedAt)
	}
	if f.Sort.Direction == Descending {
		c = -c
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(a.ID.Hex(), b.ID.Hex())
}
