package validators

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/agendapro/internal/domain/user"
)

// Register adds the custom binding tags used by request structs:
// hhmm ("09:30"), date ("2024-01-15") and cpfcnpj.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return register(v)
}

func register(v *validator.Validate) error {
	if err := v.RegisterValidation("hhmm", layout("15:04")); err != nil {
		return err
	}
	if err := v.RegisterValidation("date", layout("2006-01-02")); err != nil {
		return err
	}
	return v.RegisterValidation("cpfcnpj", func(fl validator.FieldLevel) bool {
		return user.ValidTaxID(fl.Field().String())
	})
}

func layout(l string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(l, fl.Field().String())
		return err == nil
	}
}
