package booking

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the booking-specific binding rules on
// gin's validator engine. Call once at startup, before routes are served.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// calendardate accepts YYYY-MM-DD, optionally with a time-of-day
	// suffix that normalization will strip.
	v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		_, ok := NormalizeDate(fl.Field().String())
		return ok
	})
}
