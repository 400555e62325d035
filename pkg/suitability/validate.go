package suitability

import "strings"

// ValidationError is returned when a request cannot be analyzed. No scorer runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + " " + e.Reason
}

// Validate checks the request and returns the soil and weather profiles the scorers
// will see. A soil profile without a texture inherits the field's texture tag.
func Validate(req Request) (SoilProfile, WeatherProfile, error) {
	if strings.TrimSpace(req.Field.FieldID) == "" {
		return SoilProfile{}, WeatherProfile{}, &ValidationError{Field: "field", Reason: "required"}
	}
	if req.Field.Area <= 0 {
		return SoilProfile{}, WeatherProfile{}, &ValidationError{Field: "field area", Reason: "must be positive"}
	}
	soil := req.Soil
	if soil.Texture == "" {
		soil.Texture = req.Field.SoilTexture
	}
	return soil, req.Weather, nil
}
