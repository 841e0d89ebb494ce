package validation_test

import (
	"encoding/json"
	"testing"

	"catalog/internal/models"
	"catalog/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validationError(t *testing.T, err error) *models.ValidationError {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*models.ValidationError)
	require.True(t, ok, "expected *models.ValidationError, got %T", err)
	return verr
}

func TestValidator_CreateProductInput(t *testing.T) {
	v := validation.New()

	valid := models.CreateProductInput{
		Name:          "Widget",
		Description:   strPtr("A widget"),
		Price:         models.MustPrice("19.99"),
		StockQuantity: 100,
	}
	assert.NoError(t, v.Struct(valid))

	// Null description and zero stock are both fine.
	noDesc := valid
	noDesc.Description = nil
	noDesc.StockQuantity = 0
	assert.NoError(t, v.Struct(noDesc))

	tests := []struct {
		name  string
		input models.CreateProductInput
		field string
		rule  string
	}{
		{"negative price", models.CreateProductInput{Name: "A", Price: models.MustPrice("-5"), StockQuantity: 1}, "price", "gt"},
		{"zero price", models.CreateProductInput{Name: "A", Price: models.MustPrice("0"), StockQuantity: 1}, "price", "required"},
		{"negative stock", models.CreateProductInput{Name: "A", Price: models.MustPrice("1"), StockQuantity: -1}, "stock_quantity", "gte"},
		{"empty name", models.CreateProductInput{Name: "", Price: models.MustPrice("1"), StockQuantity: 1}, "name", "required"},
		{"sub-cent price", models.CreateProductInput{Name: "A", Price: models.MustPrice("1.005"), StockQuantity: 1}, "price", "currency"},
		{"price overflow", models.CreateProductInput{Name: "A", Price: models.MustPrice("100000000"), StockQuantity: 1}, "price", "lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := validationError(t, v.Struct(tt.input))
			assert.True(t, verr.Has(tt.field, tt.rule), "expected %s/%s in %v", tt.field, tt.rule, verr.Fields)
		})
	}
}

func TestValidator_ReportsEveryViolation(t *testing.T) {
	v := validation.New()

	verr := validationError(t, v.Struct(models.CreateProductInput{
		Name:          "",
		Price:         models.MustPrice("-5"),
		StockQuantity: -1,
	}))

	assert.Len(t, verr.Fields, 3)
	assert.True(t, verr.Has("name", "required"))
	assert.True(t, verr.Has("price", "gt"))
	assert.True(t, verr.Has("stock_quantity", "gte"))
}

func TestValidator_UpdateProductInput(t *testing.T) {
	v := validation.New()

	decode := func(t *testing.T, body string) models.UpdateProductInput {
		t.Helper()
		var in models.UpdateProductInput
		require.NoError(t, json.Unmarshal([]byte(body), &in))
		return in
	}

	t.Run("only id", func(t *testing.T) {
		assert.NoError(t, v.Struct(decode(t, `{"id": 1}`)))
	})

	t.Run("null description is allowed", func(t *testing.T) {
		assert.NoError(t, v.Struct(decode(t, `{"id": 1, "description": null}`)))
	})

	t.Run("zero stock is allowed", func(t *testing.T) {
		assert.NoError(t, v.Struct(decode(t, `{"id": 1, "stock_quantity": 0}`)))
	})

	t.Run("all fields", func(t *testing.T) {
		in := decode(t, `{"id": 1, "name": "B", "description": "d", "price": 49.99, "stock_quantity": 75}`)
		assert.NoError(t, v.Struct(in))
	})

	rejected := []struct {
		name  string
		body  string
		field string
		rule  string
	}{
		{"explicit empty name", `{"id": 1, "name": ""}`, "name", "min"},
		{"null name", `{"id": 1, "name": null}`, "name", "notnull"},
		{"null price", `{"id": 1, "price": null}`, "price", "notnull"},
		{"null stock", `{"id": 1, "stock_quantity": null}`, "stock_quantity", "notnull"},
		{"negative price", `{"id": 1, "price": -5}`, "price", "gt"},
		{"zero price", `{"id": 1, "price": 0}`, "price", "gt"},
		{"negative stock", `{"id": 1, "stock_quantity": -1}`, "stock_quantity", "gte"},
		{"sub-cent price", `{"id": 1, "price": 0.001}`, "price", "currency"},
		{"missing id", `{"name": "x"}`, "id", "gt"},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			verr := validationError(t, v.Struct(decode(t, tt.body)))
			assert.True(t, verr.Has(tt.field, tt.rule), "expected %s/%s in %v", tt.field, tt.rule, verr.Fields)
		})
	}
}

func TestValidator_LoginInput(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Struct(models.LoginInput{Email: "test@example.com", Password: "x"}))

	verr := validationError(t, v.Struct(models.LoginInput{Email: "not-an-email", Password: ""}))
	assert.True(t, verr.Has("email", "email"))
	assert.True(t, verr.Has("password", "required"))
}

func TestValidator_IDInputs(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Struct(models.GetProductInput{ID: 1}))
	assert.NoError(t, v.Struct(models.DeleteProductInput{ID: 42}))

	verr := validationError(t, v.Struct(models.GetProductInput{ID: 0}))
	assert.True(t, verr.Has("id", "gt"))
}
