package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with the clipref tag registered
func New() *CustomValidator {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("clipref", validateClipRef)
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// IsClipRef reports whether ref is a playable clip reference: an absolute
// http(s) URL, a backend-relative path, or an s3://bucket/key object.
func IsClipRef(ref string) bool {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return false
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return len(ref) > len("https://")
	case strings.HasPrefix(ref, "s3://"):
		rest := strings.TrimPrefix(ref, "s3://")
		bucket, key, ok := strings.Cut(rest, "/")
		return ok && bucket != "" && key != ""
	default:
		return strings.HasPrefix(ref, "/")
	}
}

func validateClipRef(fl validator.FieldLevel) bool {
	return IsClipRef(fl.Field().String())
}
