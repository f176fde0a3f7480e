package query

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"hypergo-properties/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mustParse(t *testing.T, raw string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return v
}

func TestCanonicalizeOrderIndependent(t *testing.T) {
	a := Canonicalize(mustParse(t, "category=Villa&minPrice=100&city=Pune&amenities=pool|gym"))
	b := Canonicalize(mustParse(t, "amenities=GYM|pool&city=Pune&minPrice=100.0&type=villa"))

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("filters differ:\n%+v\n%+v", a, b)
	}
	if a.Encode() != b.Encode() {
		t.Fatalf("encodings differ:\n%s\n%s", a.Encode(), b.Encode())
	}
}

func TestCanonicalizeDefaults(t *testing.T) {
	f := Canonicalize(url.Values{})

	if f.Page != DefaultPage || f.Limit != DefaultLimit {
		t.Errorf("page/limit = %d/%d", f.Page, f.Limit)
	}
	if f.Sort.Field != "createdAt" || f.Sort.Direction != Descending {
		t.Errorf("default sort = %+v", f.Sort)
	}
	if got, want := f.Encode(), "sort=createdAt:desc&page=1&limit=25"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestCanonicalizeDropsMalformed(t *testing.T) {
	f := Canonicalize(mustParse(t, "category=Castle&minPrice=abc&maxPrice=NaN&bedrooms=-1&bathrooms=two&furnished=maybe&sortBy=password&page=0&limit=-5"))
	want := Canonicalize(url.Values{})

	if !reflect.DeepEqual(f, want) {
		t.Fatalf("expected all malformed values dropped, got %+v", f)
	}
}

func TestCanonicalizeFields(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, f CanonicalFilter)
	}{
		{
			name:  "enum normalization",
			query: "category=APARTMENT&furnished=semi-furnished&listingType=RENT",
			check: func(t *testing.T, f CanonicalFilter) {
				if f.Category != "Apartment" || f.Furnished != "Semi-Furnished" || f.ListingType != "rent" {
					t.Errorf("got %q %q %q", f.Category, f.Furnished, f.ListingType)
				}
			},
		},
		{
			name:  "open ranges",
			query: "minPrice=500&maxArea=1200",
			check: func(t *testing.T, f CanonicalFilter) {
				if f.Price.Min == nil || *f.Price.Min != 500 || f.Price.Max != nil {
					t.Errorf("price = %+v", f.Price)
				}
				if f.Area.Max == nil || *f.Area.Max != 1200 || f.Area.Min != nil {
					t.Errorf("area = %+v", f.Area)
				}
			},
		},
		{
			name:  "explicit sort defaults to ascending",
			query: "sortBy=price",
			check: func(t *testing.T, f CanonicalFilter) {
				if f.Sort.Field != "price" || f.Sort.Direction != Ascending {
					t.Errorf("sort = %+v", f.Sort)
				}
			},
		},
		{
			name:  "explicit descending sort",
			query: "sortBy=areaSqFt&sortOrder=desc",
			check: func(t *testing.T, f CanonicalFilter) {
				if f.Sort.Field != "areaSqFt" || f.Sort.Direction != Descending {
					t.Errorf("sort = %+v", f.Sort)
				}
			},
		},
		{
			name:  "limit capped",
			query: "limit=1000&page=3",
			check: func(t *testing.T, f CanonicalFilter) {
				if f.Limit != MaxLimit || f.Page != 3 {
					t.Errorf("limit/page = %d/%d", f.Limit, f.Page)
				}
				if f.Skip() != 200 {
					t.Errorf("skip = %d", f.Skip())
				}
			},
		},
		{
			name:  "huge page clamped",
			query: "page=4611686018427387905&limit=100",
			check: func(t *testing.T, f CanonicalFilter) {
				if f.Page != MaxPage {
					t.Errorf("page = %d, want %d", f.Page, MaxPage)
				}
				if f.Skip() < 0 {
					t.Errorf("skip overflowed: %d", f.Skip())
				}
			},
		},
		{
			name:  "page beyond int range clamped",
			query: "page=99999999999999999999999&limit=2",
			check: func(t *testing.T, f CanonicalFilter) {
				if f.Page != MaxPage || f.Skip() < 0 {
					t.Errorf("page/skip = %d/%d", f.Page, f.Skip())
				}
			},
		},
		{
			name:  "negative page dropped",
			query: "page=-99999999999999999999999",
			check: func(t *testing.T, f CanonicalFilter) {
				if f.Page != DefaultPage {
					t.Errorf("page = %d", f.Page)
				}
			},
		},
		{
			name:  "amenities deduped across values",
			query: "amenities=Pool| gym &amenities=pool",
			check: func(t *testing.T, f CanonicalFilter) {
				if !reflect.DeepEqual(f.Amenities, []string{"gym", "pool"}) {
					t.Errorf("amenities = %v", f.Amenities)
				}
			},
		},
		{
			name:  "negative zero",
			query: "minPrice=-0",
			check: func(t *testing.T, f CanonicalFilter) {
				if got := f.Encode(); got != "price=[0,*]&sort=createdAt:desc&page=1&limit=25" {
					t.Errorf("Encode() = %q", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Canonicalize(mustParse(t, tt.query)))
		})
	}
}

func TestEncodeEscapesFreeText(t *testing.T) {
	a := Canonicalize(url.Values{"city": {"a&state=b"}})
	b := Canonicalize(url.Values{"city": {"a"}, "state": {"b"}})
	if a.Encode() == b.Encode() {
		t.Fatalf("distinct filters share an encoding: %q", a.Encode())
	}
}

func TestTotalPages(t *testing.T) {
	f := Canonicalize(url.Values{})
	tests := []struct {
		total int64
		want  int
	}{
		{0, 0},
		{1, 1},
		{25, 1},
		{26, 2},
		{30, 2},
	}
	for _, tt := range tests {
		if got := f.TotalPages(tt.total); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestMatches(t *testing.T) {
	p := &models.Property{
		Type:        models.TypeVilla,
		Price:       2500000,
		State:       "Goa",
		City:        "Panaji",
		AreaSqFt:    3200,
		Bedrooms:    4,
		Bathrooms:   3,
		Amenities:   "pool|garden|Gym",
		Furnished:   models.Furnished,
		ListingType: models.ListingSale,
	}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"category=villa&city=Panaji", true},
		{"category=House", false},
		{"minPrice=2000000&maxPrice=3000000", true},
		{"maxPrice=100", false},
		{"bedrooms=4&bathrooms=3", true},
		{"bedrooms=2", false},
		{"amenities=gym", true},
		{"amenities=sauna|POOL", true},
		{"amenities=sauna", false},
		{"listingType=rent", false},
		{"city=panaji", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := Canonicalize(mustParse(t, tt.query)).Matches(p); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompareTieBreaksOnID(t *testing.T) {
	now := time.Now()
	a := &models.Property{ID: primitive.NewObjectID(), Price: 10, CreatedAt: now}
	b := &models.Property{ID: primitive.NewObjectID(), Price: 10, CreatedAt: now}

	f := Canonicalize(url.Values{"sortBy": {"price"}})
	if f.Compare(a, b) >= 0 {
		t.Errorf("expected a before b on equal price")
	}

	cheap := &models.Property{ID: primitive.NewObjectID(), Price: 5}
	desc := Canonicalize(url.Values{"sortBy": {"price"}, "sortOrder": {"desc"}})
	if desc.Compare(a, cheap) >= 0 {
		t.Errorf("expected higher price first in descending order")
	}
}
