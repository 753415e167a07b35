package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
)

type memberNameStruct struct {
	Name string `validate:"required,member_name"`
}

func TestValidator_MemberName(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "alice", false},
		{"spaces and symbols", "Iron Alice-_1", false},
		{"max length", strings.Repeat("a", 16), false},
		{"shared left to service", domain.SharedMemberName, false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 17), true},
		{"invalid characters", "al!ce", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(memberNameStruct{Name: tt.input})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(ItemRequestBody{ItemName: "whip"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be greater than 0", fields["itemid"])
	assert.Equal(t, "Must be greater than 0", fields["quantity"])
	assert.Equal(t, "This field is required", fields["requestername"])
	assert.Nil(t, FormatValidationError(nil))
}
