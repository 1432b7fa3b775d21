package config

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general")...)
	}

	if c.Server != nil {
		if err := validate.Struct(c.Server); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "server")...)
		}
	}

	if c.Zone != nil {
		if err := validate.Struct(c.Zone); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "zone")...)
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}
