package handlers

import (
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the "channel" and "category" tags to gin's validator.
// Safe to call more than once; every call reports the outcome of the first.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		if err := v.RegisterValidation("channel", validateChannel); err != nil {
			registerErr = fmt.Errorf("failed to register channel validator: %w", err)
			return
		}
		if err := v.RegisterValidation("category", validateCategory); err != nil {
			registerErr = fmt.Errorf("failed to register category validator: %w", err)
		}
	})
	return registerErr
}

func validateChannel(fl validator.FieldLevel) bool {
	_, ok := domain.ParseChannel(fl.Field().String())
	return ok
}

func validateCategory(fl validator.FieldLevel) bool {
	return domain.Category(strings.ToUpper(strings.TrimSpace(fl.Field().String()))).Valid()
}
