package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"nordhem/internal/http/handlers"
	applog "nordhem/internal/log"
	"nordhem/internal/repos"
	"nordhem/internal/services"
)

const testSecret = "test-secret"

// newTestApp wires the real handlers over an in-memory database, mirroring
// the route table of cmd/nordhem.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	authSvc := services.NewAuthService(repos.NewUserRepo(db), testSecret)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		},
	})
	app.Use(requestid.New())
	app.Use(limiter.New(limiter.Config{Max: 1000, Expiration: time.Minute}))

	deps := handlers.NewDeps(db, authSvc)

	products := app.Group("/api/products")
	products.Get("/", deps.ProductHandler.List)
	products.Get("/new", deps.ProductHandler.ListNew)
	products.Get("/sale", deps.ProductHandler.ListSale)
	products.Get("/categories", deps.ProductHandler.Categories)
	products.Get("/colors", deps.ProductHandler.Colors)
	products.Get("/search", deps.ProductHandler.Search)
	products.Get("/:id", deps.ProductHandler.Detail)

	auth := app.Group("/api/auth")
	auth.Post("/register", deps.AuthHandler.Register)
	auth.Post("/login", deps.AuthHandler.Login)
	auth.Get("/me", handlers.RequireAuth(authSvc), deps.AuthHandler.Me)

	return app
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("decode body %q: %v", b, err)
	}
}

// wireProduct matches the JSON the products endpoints serve.
type wireProduct struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	DiscountPrice  *float64 `json:"discount_price"`
	Image          string   `json:"image"`
	CategoryID     int      `json:"category_id"`
	ColorID        *int     `json:"color_id"`
	IsNew          bool     `json:"is_new"`
	IsSale         bool     `json:"is_sale"`
	EffectivePrice float64  `json:"effective_price"`
}
