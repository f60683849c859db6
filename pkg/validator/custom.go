package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

func RegisterCustomValidations(validate *validator.Validate) {
	_ = validate.RegisterValidation("lat", validateLat)
	_ = validate.RegisterValidation("lng", validateLng)
	_ = validate.RegisterValidation("zone_type", validateZoneType)
	_ = validate.RegisterValidation("radius_m", validateRadiusMeters)
	_ = validate.RegisterValidation("hour", validateHour)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateZoneType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "SAFE", "DANGER":
		return true
	}
	return false
}

func validateRadiusMeters(fl validator.FieldLevel) bool {
	radius := fl.Field().Float()
	return radius > 0 && radius <= 50_000
}

// validateHour accepts HH:MM and HH:MM:SS.
func validateHour(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	for _, layout := range []string{"15:04", "15:04:05"} {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}
