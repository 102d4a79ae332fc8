package handlers_test

import (
	"testing"

	"github.com/SscSPs/cc_reco_app/internal/dto"
	"github.com/SscSPs/cc_reco_app/internal/handlers"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators_Idempotent(t *testing.T) {
	require.NoError(t, handlers.RegisterValidators())
	assert.NotPanics(t, func() {
		assert.NoError(t, handlers.RegisterValidators())
	})
}

func TestRegisterValidators_Tags(t *testing.T) {
	require.NoError(t, handlers.RegisterValidators())

	tests := []struct {
		name    string
		req     dto.CreateVendorRequest
		wantErr bool
	}{
		{"valid lower-case channel and category", dto.CreateVendorRequest{Prefix: "ACME", VendorName: "Acme", Category: "only_a", Channel: "a"}, false},
		{"channel omitted", dto.CreateVendorRequest{Prefix: "ACME", VendorName: "Acme", Category: "COMMON"}, false},
		{"unknown channel", dto.CreateVendorRequest{Prefix: "ACME", VendorName: "Acme", Category: "COMMON", Channel: "Z"}, true},
		{"unknown category", dto.CreateVendorRequest{Prefix: "ACME", VendorName: "Acme", Category: "SOMETIMES"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
