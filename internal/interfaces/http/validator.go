package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidator go-playground/validator'ı istek gövdeleri için sarar;
// hata mesajları alan bazında tek string'de toplanır.
type requestValidator struct {
	v *validator.Validate
}

// NewValidator istek doğrulayıcısını kurar.
func NewValidator() *requestValidator {
	return &requestValidator{v: validator.New()}
}

// Validate struct tag'lerini denetler ve okunur bir hata döndürür.
func (rv *requestValidator) Validate(i any) error {
	if err := rv.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError tek doğrulama hatasını okunur mesaja çevirir.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " zorunludur"
	case "email":
		return field + " geçerli bir e-posta olmalıdır"
	case "min":
		return fmt.Sprintf("%s en az %s karakter olmalıdır", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s en çok %s karakter olmalıdır", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s şunlardan biri olmalıdır: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s doğrulamadan geçemedi (%s)", field, fe.Tag())
	}
}
