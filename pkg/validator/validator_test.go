package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `validate:"required"`
	Prefix string `validate:"tableprefix"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      interface{}
		wantErr string
	}{
		{name: "valid", in: sample{Name: "a", Prefix: "wp_"}},
		{name: "empty prefix", in: sample{Name: "a"}},
		{name: "missing required", in: sample{Prefix: "wp_"}, wantErr: "Field: Name, Tag: required"},
		{name: "bad prefix", in: sample{Name: "a", Prefix: "wp; DROP"}, wantErr: "Field: Prefix, Tag: tableprefix"},
		{name: "not a struct", in: 42, wantErr: "validation failed"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTablePrefix(t *testing.T) {
	t.Parallel()

	assert.True(t, TablePrefix("wp_"))
	assert.True(t, TablePrefix(""))
	assert.True(t, TablePrefix("site2_wp_"))
	assert.False(t, TablePrefix("wp-"))
	assert.False(t, TablePrefix("wp_`x"))
}
