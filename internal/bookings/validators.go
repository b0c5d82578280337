package bookings

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var timeSlotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// RegisterValidators installs custom binding validators. Call once at
// startup, before the router starts serving.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
			return timeSlotPattern.MatchString(fl.Field().String())
		})
	}
}
