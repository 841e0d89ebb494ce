package handlers

import (
	"fmt"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// RegisterRoutes registers the product routes behind the given middleware.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, middleware ...fiber.Handler) {
	productRoutes := router.Group("/products", middleware...)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Patch("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetProducts(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	product, err := h.service.GetProduct(c.UserContext(), models.GetProductInput{ID: id})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if product == nil {
		return productNotFound(c, id)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c, h.logger, err)
	}

	product, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	h.logger.Info().Int64("product_id", product.ID).Msg("product created")
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update. Fields missing from the body are
// left unchanged and "description": null clears the description.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var input models.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c, h.logger, err)
	}
	// The path wins over any id in the body.
	input.ID = id

	product, err := h.service.UpdateProduct(c.UserContext(), input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if product == nil {
		return productNotFound(c, id)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product and reports whether it existed.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	deleted, err := h.service.DeleteProduct(c.UserContext(), models.DeleteProductInput{ID: id})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// productID reads the :id path parameter. A non-integer id is a validation failure.
func productID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, &models.ValidationError{Fields: []models.FieldError{{Field: "id", Rule: "numeric"}}}
	}
	return int64(id), nil
}

func productNotFound(c *fiber.Ctx, id int64) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": fmt.Sprintf("Product with ID %d not found", id),
	})
}
