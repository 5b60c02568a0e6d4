package playground

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterWithGin installs the br_tax_id tag on Gin's default binding
// engine, making `binding:"br_tax_id"` available to ShouldBind and friends.
// Call it once during startup, before any request is bound.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("playground: gin binding engine is not a *validator.Validate")
	}
	return Register(v)
}
