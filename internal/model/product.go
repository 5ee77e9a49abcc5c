package model

import "time"

// Category classifies a product in the catalogue. The set is closed; the
// seed data and the mock fallback catalogue both draw from it.
type Category string

const (
	CategoryRoses      Category = "roses"
	CategoryTulips     Category = "tulips"
	CategoryOrchids    Category = "orchids"
	CategorySunflowers Category = "sunflowers"
	CategoryLilies     Category = "lilies"
	CategoryPeonies    Category = "peonies"
	CategoryMixed      Category = "mixed"
	CategorySeasonal   Category = "seasonal"
)

// Categories lists all valid product categories.
func Categories() []Category {
	return []Category{
		CategoryRoses,
		CategoryTulips,
		CategoryOrchids,
		CategorySunflowers,
		CategoryLilies,
		CategoryPeonies,
		CategoryMixed,
		CategorySeasonal,
	}
}

// Valid reports whether the category is one of the enumerated values.
func (c Category) Valid() bool {
	switch c {
	case CategoryRoses, CategoryTulips, CategoryOrchids, CategorySunflowers,
		CategoryLilies, CategoryPeonies, CategoryMixed, CategorySeasonal:
		return true
	}
	return false
}

// Product represents a flower product in the catalogue.
// Price is in minor currency units (cents).
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       int64     `json:"price" db:"price"`
	Category    Category  `json:"category" db:"category"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	InStock     bool      `json:"inStock" db:"in_stock"`
	Featured    bool      `json:"featured" db:"featured"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductFilter narrows catalogue listings.
type ProductFilter struct {
	Category string // empty or "all" means no category filter
	Featured bool   // true restricts to featured products
	Limit    int    // zero means no limit
}

// ProductInput is the request payload for creating or updating a product.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	InStock     bool     `json:"inStock"`
	Featured    bool     `json:"featured"`
}
