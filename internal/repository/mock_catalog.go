package repository

import (
	"flower-shop/internal/model"
)

// mockCatalog is the built-in product list served when the database is
// unreachable. Read-only; callers receive copies.
var mockCatalog = []model.Product{
	{
		ID:          "1",
		Name:        "Classic Red Roses",
		Description: "A timeless bouquet of 12 premium red roses with baby's breath and lush greenery. Perfect for expressing love and romance.",
		Price:       5999,
		Category:    model.CategoryRoses,
		ImageURL:    "/images/red-roses.png",
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "2",
		Name:        "Spring Tulip Mix",
		Description: "Vibrant assortment of colorful tulips that bring the essence of spring into any room. Available in pink, yellow, and white.",
		Price:       4599,
		Category:    model.CategoryTulips,
		ImageURL:    "/images/spring-tulips.png",
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "3",
		Name:        "Sunshine Sunflowers",
		Description: "Cheerful sunflowers that brighten any day. This bouquet features 6 large sunflower blooms with complementary greenery.",
		Price:       3999,
		Category:    model.CategorySunflowers,
		ImageURL:    "/images/sunflowers.jpg",
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "4",
		Name:        "Elegant White Lilies",
		Description: "Pure white oriental lilies symbolizing elegance and tranquility. Perfect for special occasions and sympathy arrangements.",
		Price:       5499,
		Category:    model.CategoryLilies,
		ImageURL:    "/images/white-lilies.png",
		InStock:     true,
		Featured:    false,
	},
	{
		ID:          "5",
		Name:        "Mixed Wildflower Bundle",
		Description: "Rustic arrangement of seasonal wildflowers picked at their peak. Each bouquet is unique and full of natural charm.",
		Price:       3499,
		Category:    model.CategoryMixed,
		ImageURL:    "/images/wildflowers.png",
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "6",
		Name:        "Pink Peony Perfection",
		Description: "Luxurious peonies in shades of pink and blush. These full-bloomed beauties are the epitome of romantic elegance.",
		Price:       6999,
		Category:    model.CategoryPeonies,
		ImageURL:    "/images/pink-roses.png",
		InStock:     true,
		Featured:    false,
	},
}

// MockProducts returns the fallback catalogue narrowed by the filter.
func MockProducts(filter model.ProductFilter) []model.Product {
	var products []model.Product
	for _, p := range mockCatalog {
		if filter.Category != "" && filter.Category != "all" && string(p.Category) != filter.Category {
			continue
		}
		if filter.Featured && !p.Featured {
			continue
		}
		products = append(products, p)
		if filter.Limit > 0 && len(products) == filter.Limit {
			break
		}
	}
	return products
}

// MockProduct returns the fallback catalogue entry for the given id, or nil.
func MockProduct(id string) *model.Product {
	for _, p := range mockCatalog {
		if p.ID == id {
			product := p
			return &product
		}
	}
	return nil
}
