// Package validation provides struct validation built on
// go-playground/validator. Config structs across the kit declare
// `validate` tags and call Validate from their Validate methods.
//
//	type Config struct {
//	    BaseURL string `mapstructure:"base_url" validate:"required,url"`
//	}
//
//	if err := validation.Validate(&cfg); err != nil { ... }
package validation
