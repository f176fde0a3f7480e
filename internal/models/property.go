package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property categories, the "type" field of a listing.
const (
	TypeBungalow  = "Bungalow"
	TypeApartment = "Apartment"
	TypeVilla     = "Villa"
	TypeHouse     = "House"
	TypePlot      = "Plot"
)

const (
	Furnished     = "Furnished"
	Unfurnished   = "Unfurnished"
	SemiFurnished = "Semi-Furnished"
)

const (
	ListingRent = "rent"
	ListingSale = "sale"
)

var (
	PropertyTypes   = []string{TypeBungalow, TypeApartment, TypeVilla, TypeHouse, TypePlot}
	FurnishedStates = []string{Furnished, Unfurnished, SemiFurnished}
	ListingTypes    = []string{ListingRent, ListingSale}
)

// AmenitySeparator joins amenity tokens inside Property.Amenities.
const AmenitySeparator = "|"

// Property is a listing. PropertyID is the public identifier and ID the store identifier.
type Property struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PropertyID    string             `json:"id" bson:"id"`
	Title         string             `json:"title" bson:"title"`
	Type          string             `json:"type" bson:"type"`
	Price         float64            `json:"price" bson:"price"`
	State         string             `json:"state" bson:"state"`
	City          string             `json:"city" bson:"city"`
	AreaSqFt      float64            `json:"areaSqFt" bson:"areaSqFt"`
	Bedrooms      int                `json:"bedrooms" bson:"bedrooms"`
	Bathrooms     int                `json:"bathrooms" bson:"bathrooms"`
	Amenities     string             `json:"amenities" bson:"amenities"`
	Furnished     string             `json:"furnished" bson:"furnished"`
	AvailableFrom time.Time          `json:"availableFrom" bson:"availableFrom"`
	ListedBy      string             `json:"listedBy" bson:"listedBy"`
	Tags          string             `json:"tags" bson:"tags"`
	ColorTheme    string             `json:"colorTheme" bson:"colorTheme"`
	Rating        float64            `json:"rating" bson:"rating"`
	IsVerified    bool               `json:"isVerified" bson:"isVerified"`
	ListingType   string             `json:"listingType" bson:"listingType"`
	CreatedBy     primitive.ObjectID `json:"createdById" bson:"createdBy"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PropertyResponse is a listing with its owner populated.
type PropertyResponse struct {
	Property
	Owner *UserSummary `json:"createdBy,omitempty"`
}

// SearchResult is the cached unit for a filtered search.
type SearchResult struct {
	Properties []PropertyResponse `json:"properties"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

// PropertyInput is the create payload. Pointer-free; every field is required.
type PropertyInput struct {
	Title         string  `json:"title" validate:"required,max=200"`
	Type          string  `json:"type" validate:"required,oneof=Bungalow Apartment Villa House Plot"`
	Price         float64 `json:"price" validate:"gte=0"`
	State         string  `json:"state" validate:"required"`
	City          string  `json:"city" validate:"required"`
	AreaSqFt      float64 `json:"areaSqFt" validate:"gte=0"`
	Bedrooms      int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int     `json:"bathrooms" validate:"gte=0"`
	Amenities     string  `json:"amenities" validate:"required"`
	Furnished     string  `json:"furnished" validate:"required,oneof=Furnished Unfurnished Semi-Furnished"`
	AvailableFrom string  `json:"availableFrom" validate:"required,isodate"`
	ListedBy      string  `json:"listedBy" validate:"required"`
	Tags          string  `json:"tags" validate:"required"`
	ColorTheme    string  `json:"colorTheme" validate:"required,hexcolor,len=7"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=5"`
	IsVerified    bool    `json:"isVerified"`
	ListingType   string  `json:"listingType" validate:"required,oneof=rent sale"`
}

// PropertyPatch is the update payload; nil fields are left unchanged.
// The public identifier is not part of it and cannot be changed.
type PropertyPatch struct {
	Title         *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Type          *string  `json:"type" validate:"omitempty,oneof=Bungalow Apartment Villa House Plot"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	State         *string  `json:"state" validate:"omitempty,min=1"`
	City          *string  `json:"city" validate:"omitempty,min=1"`
	AreaSqFt      *float64 `json:"areaSqFt" validate:"omitempty,gte=0"`
	Bedrooms      *int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms     *int     `json:"bathrooms" validate:"omitempty,gte=0"`
	Amenities     *string  `json:"amenities" validate:"omitempty,min=1"`
	Furnished     *string  `json:"furnished" validate:"omitempty,oneof=Furnished Unfurnished Semi-Furnished"`
	AvailableFrom *string  `json:"availableFrom" validate:"omitempty,isodate"`
	ListedBy      *string  `json:"listedBy" validate:"omitempty,min=1"`
	Tags          *string  `json:"tags" validate:"omitempty,min=1"`
	ColorTheme    *string  `json:"colorTheme" validate:"omitempty,hexcolor,len=7"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	IsVerified    *bool    `json:"isVerified"`
	ListingType   *string  `json:"listingType" validate:"omitempty,oneof=rent sale"`
}
