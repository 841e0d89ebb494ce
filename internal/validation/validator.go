package validation

import (
	"errors"
	"reflect"
	"strings"

	"catalog/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator checks request inputs against their struct tags and reports every
// violated constraint as a models.ValidationError.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the catalog's custom types and rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		return field.Interface().(models.Price).Float64()
	}, models.Price{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		return models.ValidationValue(field.Interface().(models.OptionalValue))
	}, models.Optional[string]{}, models.Optional[int]{}, models.Optional[models.Price]{})

	v.RegisterStructValidation(createProductRules, models.CreateProductInput{})
	v.RegisterStructValidation(updateProductRules, models.UpdateProductInput{})

	return &Validator{validate: v}
}

// Struct validates s. It returns nil or a *models.ValidationError.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &models.ValidationError{Fields: make([]models.FieldError, 0, len(verrs))}
	for _, e := range verrs {
		out.Fields = append(out.Fields, models.FieldError{
			Field: e.Field(),
			Rule:  e.Tag(),
			Param: e.Param(),
		})
	}
	return out
}

func createProductRules(sl validator.StructLevel) {
	in := sl.Current().Interface().(models.CreateProductInput)
	if !in.Price.HasCents() {
		sl.ReportError(in.Price, "price", "Price", "currency", "")
	}
}

func updateProductRules(sl validator.StructLevel) {
	in := sl.Current().Interface().(models.UpdateProductInput)
	if in.Name.IsNull() {
		sl.ReportError(in.Name, "name", "Name", "notnull", "")
	}
	if in.Price.IsNull() {
		sl.ReportError(in.Price, "price", "Price", "notnull", "")
	}
	if in.StockQuantity.IsNull() {
		sl.ReportError(in.StockQuantity, "stock_quantity", "StockQuantity", "notnull", "")
	}
	if p, ok := in.Price.Get(); ok && !p.HasCents() {
		sl.ReportError(in.Price, "price", "Price", "currency", "")
	}
}
