// Package playground integrates the brazil tax ID validator with
// go-playground/validator/v10 so CPF and CNPJ fields can be checked through
// struct tags, including Gin's request binding which uses the same engine.
package playground

import (
	"github.com/go-playground/validator/v10"

	"github.com/nexconsult/docval/brazil"
)

// Tag is the struct-tag name registered for tax ID validation.
const Tag = "br_tax_id"

// TaxID is a validator.Func accepting any string field that holds a valid
// CPF or CNPJ, formatted or not.
func TaxID(fl validator.FieldLevel) bool {
	return brazil.IsValidTaxID(fl.Field().String())
}

// Register installs the br_tax_id tag on v.
func Register(v *validator.Validate) error {
	return v.RegisterValidation(Tag, TaxID)
}
