package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMobileNo(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare 10 digits", input: "9876543210", want: "9876543210"},
		{name: "with country code", input: "919876543210", want: "9876543210"},
		{name: "with plus country code", input: "+919876543210", want: "9876543210"},
		{name: "with leading zero", input: "09876543210", want: "9876543210"},
		{name: "with dashes", input: "98765-43210", want: "9876543210"},
		{name: "with spaces", input: "98765 43210", want: "9876543210"},
		{name: "too short", input: "987654321", wantErr: true},
		{name: "too long", input: "98765432101", wantErr: true},
		{name: "bad leading digit", input: "1876543210", wantErr: true},
		{name: "letters", input: "98765abcde", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateMobileNo(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatWithCountryCode(t *testing.T) {
	assert.Equal(t, "+919876543210", FormatWithCountryCode("9876543210"))
}
