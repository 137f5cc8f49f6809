package handler

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/payflow/backend/internal/domain/bill/valueobject"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", validDateOnly)
	}
}

// validDateOnly accepts yyyy-MM-dd values, matching the wire format of
// every date field in the API.
func validDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(valueobject.DateLayout, fl.Field().String())
	return err == nil
}
