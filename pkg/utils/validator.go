package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SupportedImageTypes are the upload MIME types guests may send.
var SupportedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("supported_image", validateImageType)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens validation failures into field -> failed rule.
// It returns nil for errors that are not validation failures.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[toSnake(fe.Field())] = rule
	}
	return fields
}

// Desteklenen resim formatlarını kontrol et
func validateImageType(fl validator.FieldLevel) bool {
	mimeType := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	_, ok := SupportedImageTypes[mimeType]
	return ok
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
