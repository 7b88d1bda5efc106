package models

import (
	"embed"

	"RealEstateAPI/utils"
)

//go:embed schemas/*.json
var SchemasFS embed.FS

const (
	PropertySchema = "property"
	InquirySchema  = "inquiry"
)

// NewValidator compiles the embedded record schemas.
func NewValidator() (*utils.Validator, error) {
	return utils.NewValidator(SchemasFS, "schemas")
}
