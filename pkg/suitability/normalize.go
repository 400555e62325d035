package suitability

import "cropwise/pkg/catalog"

// Normalize canonicalizes enum tags, fills blank preference levels with the form
// defaults and bounds-checks the soil and weather readings. Unknown tags and
// out-of-range readings are returned as *ValidationError.
func (r *Request) Normalize() error {
	if r.Field.SoilTexture != "" {
		t, err := catalog.ParseTexture(string(r.Field.SoilTexture))
		if err != nil {
			return &ValidationError{Field: "field soil_texture", Reason: "must be sandy, loamy or clay"}
		}
		r.Field.SoilTexture = t
	}
	if r.Soil.Texture != "" {
		t, err := catalog.ParseTexture(string(r.Soil.Texture))
		if err != nil {
			return &ValidationError{Field: "soil texture", Reason: "must be sandy, loamy or clay"}
		}
		r.Soil.Texture = t
	}
	if r.Soil.Drainage != "" {
		d, err := ParseDrainage(string(r.Soil.Drainage))
		if err != nil {
			return &ValidationError{Field: "soil drainage", Reason: "must be poor, moderate, good or excellent"}
		}
		r.Soil.Drainage = d
	}
	if err := r.Preferences.Normalize(); err != nil {
		return err
	}
	if err := r.Soil.Check(); err != nil {
		return err
	}
	return r.Weather.Check()
}

// Normalize canonicalizes experience and labor levels; blank levels take the
// form defaults.
func (p *Preferences) Normalize() error {
	def := DefaultPreferences()
	if p.FarmingExperience == "" {
		p.FarmingExperience = def.FarmingExperience
	} else {
		e, err := ParseExperience(string(p.FarmingExperience))
		if err != nil {
			return &ValidationError{Field: "farming_experience", Reason: "must be beginner, intermediate or expert"}
		}
		p.FarmingExperience = e
	}
	if p.LaborAvailability == "" {
		p.LaborAvailability = def.LaborAvailability
	} else {
		a, err := ParseAvailability(string(p.LaborAvailability))
		if err != nil {
			return &ValidationError{Field: "labor_availability", Reason: "must be low, medium or high"}
		}
		p.LaborAvailability = a
	}
	if p.Budget < 0 {
		return &ValidationError{Field: "budget", Reason: "must not be negative"}
	}
	return nil
}

// Check rejects physically impossible soil readings.
func (s SoilProfile) Check() error {
	switch {
	case s.PH < 0 || s.PH > 14:
		return &ValidationError{Field: "ph", Reason: "must be within 0-14"}
	case s.Nitrogen < 0 || s.Phosphorus < 0 || s.Potassium < 0:
		return &ValidationError{Field: "nutrient readings", Reason: "must not be negative"}
	case s.OrganicMatter < 0 || s.OrganicMatter > 100:
		return &ValidationError{Field: "organic_matter", Reason: "must be a percentage"}
	case s.Moisture < 0 || s.Moisture > 100:
		return &ValidationError{Field: "moisture", Reason: "must be a percentage"}
	case s.Salinity < 0:
		return &ValidationError{Field: "salinity", Reason: "must not be negative"}
	}
	return nil
}

// Check rejects physically impossible weather readings.
func (w WeatherProfile) Check() error {
	switch {
	case w.MinTemperature > w.MaxTemperature:
		return &ValidationError{Field: "min_temperature", Reason: "is above max_temperature"}
	case w.Rainfall < 0:
		return &ValidationError{Field: "rainfall", Reason: "must not be negative"}
	case w.Humidity < 0 || w.Humidity > 100:
		return &ValidationError{Field: "humidity", Reason: "must be a percentage"}
	case w.SunlightHours < 0 || w.SunlightHours > 24:
		return &ValidationError{Field: "sunlight_hours", Reason: "must be within 0-24"}
	case w.WindSpeed < 0:
		return &ValidationError{Field: "wind_speed", Reason: "must not be negative"}
	case w.FrostDays < 0:
		return &ValidationError{Field: "frost_days", Reason: "must not be negative"}
	case w.GrowingSeason < 0 || w.GrowingSeason > 366:
		return &ValidationError{Field: "growing_season", Reason: "must be within 0-366 days"}
	}
	return nil
}
