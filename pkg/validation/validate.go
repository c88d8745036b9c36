package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"yolimar/internal/catalog"
)

var (
	validate *validator.Validate
	skuRegex = regexp.MustCompile(`^[A-Z]{3}-[0-9]{3}(-[A-Z]{3}-(XS|S|M|L|XL|XXL))?$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("sku", validateSKU)
	_ = validate.RegisterValidation("garment_size", validateGarmentSize)
	_ = validate.RegisterValidation("garment_color", validateGarmentColor)
}

// Struct runs the shared validator over a tagged struct.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

func validateSKU(fl validator.FieldLevel) bool {
	return skuRegex.MatchString(fl.Field().String())
}

func validateGarmentSize(fl validator.FieldLevel) bool {
	_, ok := catalog.SizeGroups[fl.Field().String()]
	return ok
}

func validateGarmentColor(fl validator.FieldLevel) bool {
	return catalog.KnownColor(fl.Field().String())
}
