package services

import (
	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateHandle accepts 5 to 16 printable ASCII characters. Handles are
// case-sensitive and stored as given.
func ValidateHandle(handle string) error {
	if err := validate.Var(handle, "min=5,max=16,printascii"); err != nil {
		return common.ErrHandleInvalid
	}
	return nil
}
