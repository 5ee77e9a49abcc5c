// Command shopctl is a terminal storefront for the flower shop API: browse
// the catalogue, build a cart, and check out. The cart lives in a local
// snapshot file, so it survives between invocations the way a browser cart
// survives between sessions.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"flower-shop/internal/cart"
	"flower-shop/internal/client"
	"flower-shop/internal/config"
	"flower-shop/internal/model"
)

const usage = `Usage: shopctl <command> [arguments]

Commands:
  products [category]       list catalogue products
  product <id>              show a single product
  add <id> [quantity]       add a product to the cart
  remove <id>               remove a product from the cart
  update <id> <quantity>    set a cart line's quantity (0 removes it)
  cart                      show the cart
  clear                     empty the cart
  checkout                  place the order (see checkout -h for flags)
  order <id>                show a placed order

Environment:
  SHOP_API_URL    API base URL (default http://localhost:5000)
  SHOP_CART_FILE  cart snapshot path (default ~/.flower-shop/cart.json)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	logger := config.NewLogger(config.LoggerConfig{
		Level:  envOr("LOG_LEVEL", "warn"),
		Format: "console",
	})

	api := client.New(
		envOr("SHOP_API_URL", "http://localhost:5000"),
		&http.Client{Timeout: 10 * time.Second},
		logger,
	)

	basket := cart.New(cart.NewFileSnapshot(cartPath()), logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd, rest := args[0], args[1:]; cmd {
	case "products":
		return listProducts(ctx, api, rest)
	case "product":
		return showProduct(ctx, api, rest)
	case "add":
		return addToCart(ctx, api, basket, rest)
	case "remove":
		if len(rest) != 1 {
			return fmt.Errorf("usage: shopctl remove <id>")
		}
		basket.Remove(rest[0])
		printCart(basket)
		return nil
	case "update":
		if len(rest) != 2 {
			return fmt.Errorf("usage: shopctl update <id> <quantity>")
		}
		quantity, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", rest[1])
		}
		basket.UpdateQuantity(rest[0], quantity)
		printCart(basket)
		return nil
	case "cart":
		printCart(basket)
		return nil
	case "clear":
		basket.Clear()
		fmt.Println("Cart cleared.")
		return nil
	case "checkout":
		return checkout(ctx, api, basket, rest)
	case "order":
		return showOrder(ctx, api, rest)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func listProducts(ctx context.Context, api *client.Client, args []string) error {
	filter := model.ProductFilter{}
	if len(args) > 0 {
		filter.Category = args[0]
	}

	products, err := api.Products(ctx, filter)
	if err != nil {
		return err
	}

	for _, p := range products {
		stock := ""
		if !p.InStock {
			stock = "  (out of stock)"
		}
		fmt.Printf("%-38s %-12s %8s  %s%s\n", p.ID, p.Category, formatPrice(p.Price), p.Name, stock)
	}
	return nil
}

func showProduct(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: shopctl product <id>")
	}

	p, err := api.Product(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s\nPrice: %s  Category: %s  In stock: %v\n", p.Name, p.Description, formatPrice(p.Price), p.Category, p.InStock)
	return nil
}

func addToCart(ctx context.Context, api *client.Client, basket *cart.Cart, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: shopctl add <id> [quantity]")
	}

	quantity := 1
	if len(args) == 2 {
		q, err := strconv.Atoi(args[1])
		if err != nil || q <= 0 {
			return fmt.Errorf("quantity must be a positive integer")
		}
		quantity = q
	}

	product, err := api.Product(ctx, args[0])
	if err != nil {
		return err
	}

	if err := basket.Add(*product, quantity); err != nil {
		return err
	}

	printCart(basket)
	return nil
}

func checkout(ctx context.Context, api *client.Client, basket *cart.Cart, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	name := fs.String("name", "", "customer name (required)")
	email := fs.String("email", "", "email address (required)")
	phone := fs.String("phone", "", "phone number")
	street := fs.String("street", "", "street address (required)")
	city := fs.String("city", "", "city (required)")
	zip := fs.String("zip", "", "zip code (required)")
	notes := fs.String("notes", "", "delivery notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items := basket.OrderItems()
	if len(items) == 0 {
		return fmt.Errorf("cart is empty")
	}

	req := &model.OrderRequest{
		CustomerName: *name,
		Email:        *email,
		Phone:        *phone,
		ShippingAddress: model.Address{
			Street:  *street,
			City:    *city,
			ZipCode: *zip,
		},
		Items:       items,
		TotalAmount: basket.Total(),
		Notes:       *notes,
	}

	order, err := api.PlaceOrder(ctx, req)
	if err != nil {
		// The cart is left intact so the order can be resubmitted.
		return fmt.Errorf("checkout failed: %w", err)
	}

	basket.Clear()

	fmt.Printf("Order placed!\n  Order ID: %s\n  Status:   %s\n  Total:    %s\n", order.ID, order.Status, formatPrice(order.TotalAmount))
	return nil
}

func showOrder(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: shopctl order <id>")
	}

	order, err := api.Order(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Order %s  (%s)\nCustomer: %s <%s>\nPlaced:   %s\n", order.ID, order.Status, order.CustomerName, order.Email, order.CreatedAt.Format(time.RFC1123))
	for _, item := range order.Items {
		fmt.Printf("  %dx %s @ %s\n", item.Quantity, item.ProductID, formatPrice(item.Price))
	}
	fmt.Printf("Total: %s\n", formatPrice(order.TotalAmount))
	return nil
}

func printCart(basket *cart.Cart) {
	items := basket.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty.")
		return
	}

	for _, item := range items {
		fmt.Printf("  %dx %-30s %8s each\n", item.Quantity, item.Name, formatPrice(item.Price))
	}
	fmt.Printf("Items: %d  Total: %s\n", basket.Count(), formatPrice(basket.Total()))
}

// formatPrice renders minor units as a dollar amount.
func formatPrice(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func cartPath() string {
	if path := os.Getenv("SHOP_CART_FILE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cart.json"
	}
	return filepath.Join(home, ".flower-shop", "cart.json")
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
