// Command seed creates the flower shop schema and loads the catalogue.
// Existing products are cleared first, so running it twice is safe.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"flower-shop/internal/config"
	"flower-shop/internal/database"
	"flower-shop/internal/model"
	"flower-shop/internal/repository"

	"github.com/google/uuid"
)

var catalogue = []model.ProductInput{
	{
		Name:        "Classic Red Roses",
		Description: "A timeless bouquet of 12 premium red roses with baby's breath and lush greenery. Perfect for expressing love and romance.",
		Price:       5999,
		Category:    model.CategoryRoses,
		ImageURL:    "/images/red-roses.png",
		InStock:     true,
		Featured:    true,
	},
	{
		Name:        "Spring Tulip Arrangement",
		Description: "Vibrant pink and white tulips arranged in a clear glass vase. Brings the freshness of spring to any room.",
		Price:       4599,
		Category:    model.CategoryTulips,
		ImageURL:    "/images/spring-tulips.png",
		InStock:     true,
		Featured:    true,
	},
	{
		Name:        "Sunny Day Sunflowers",
		Description: "Cheerful sunflower bouquet that brightens any space. Includes 6 large sunflower blooms with seasonal greenery.",
		Price:       4299,
		Category:    model.CategorySunflowers,
		ImageURL:    "/images/sunflowers.jpg",
		InStock:     true,
		Featured:    true,
	},
	{
		Name:        "Elegant Orchid Plant",
		Description: "Sophisticated white and purple orchids in a decorative ceramic pot. A long-lasting gift that requires minimal care.",
		Price:       6899,
		Category:    model.CategoryOrchids,
		ImageURL:    "/images/orchids.png",
		InStock:     true,
		Featured:    false,
	},
	{
		Name:        "Wildflower Meadow Mix",
		Description: "A rustic collection of colorful wildflowers including daisies, cosmos, and asters. Perfect for a natural, bohemian look.",
		Price:       3899,
		Category:    model.CategoryMixed,
		ImageURL:    "/images/wildflowers.png",
		InStock:     true,
		Featured:    false,
	},
	{
		Name:        "Pure White Lilies",
		Description: "Sophisticated arrangement of pristine white lilies symbolizing purity and elegance. Ideal for sympathy or weddings.",
		Price:       5599,
		Category:    model.CategoryLilies,
		ImageURL:    "/images/white-lilies.png",
		InStock:     true,
		Featured:    false,
	},
	{
		Name:        "Romantic Pink Roses",
		Description: "Soft pink roses arranged with eucalyptus and white roses. A gentle expression of admiration and gratitude.",
		Price:       5299,
		Category:    model.CategoryRoses,
		ImageURL:    "/images/pink-roses.png",
		InStock:     true,
		Featured:    false,
	},
	{
		Name:        "Lavender Dreams",
		Description: "Calming lavender bouquet mixed with white flowers and silver foliage. Brings tranquility to any space.",
		Price:       4799,
		Category:    model.CategoryMixed,
		ImageURL:    "/images/lavender.png",
		InStock:     false,
		Featured:    false,
	},
	{
		Name:        "Garden Rose Delight",
		Description: "Lush garden roses in shades of coral and peach. A premium arrangement that exudes luxury and sophistication.",
		Price:       7599,
		Category:    model.CategoryRoses,
		ImageURL:    "/images/garden-roses.png",
		InStock:     true,
		Featured:    false,
	},
	{
		Name:        "Tropical Paradise",
		Description: "Exotic tropical flowers including birds of paradise, orchids, and anthuriums. Makes a bold, stunning statement.",
		Price:       8299,
		Category:    model.CategoryOrchids,
		ImageURL:    "/images/tropical-flowers.png",
		InStock:     true,
		Featured:    false,
	},
	{
		Name:        "Spring Tulip Mix",
		Description: "Colorful assortment of tulips in red, yellow, pink, and white. Celebrates the beauty of spring in full bloom.",
		Price:       4899,
		Category:    model.CategoryTulips,
		ImageURL:    "/images/tulip-mix.png",
		InStock:     true,
		Featured:    false,
	},
	{
		Name:        "Autumn Harvest Bouquet",
		Description: "Warm autumn tones featuring orange roses, burgundy carnations, and golden accents. Perfect for fall celebrations.",
		Price:       5499,
		Category:    model.CategorySeasonal,
		ImageURL:    "/images/autumn-bouquet.png",
		InStock:     true,
		Featured:    false,
	},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		return err
	}
	logger.Info().Msg("schema ensured")

	if _, err := pool.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}
	logger.Info().Msg("cleared existing products")

	repo := repository.NewProductRepository(pool, logger)
	now := time.Now()

	for _, input := range catalogue {
		product := model.Product{
			ID:          uuid.New().String(),
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Category:    input.Category,
			ImageURL:    input.ImageURL,
			InStock:     input.InStock,
			Featured:    input.Featured,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repo.Create(ctx, &product); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", input.Name, err)
		}
	}

	logger.Info().Int("products", len(catalogue)).Msg("database seeded successfully")
	return nil
}
