package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCPF(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "plain digits",
			raw:  "12345678900",
			want: "12345678900",
		},
		{
			name: "formatted with separators",
			raw:  "123.456.789-00",
			want: "12345678900",
		},
		{
			name: "digits with spaces",
			raw:  " 123 456 789 00 ",
			want: "12345678900",
		},
		{
			name:    "too short",
			raw:     "1234567890",
			wantErr: true,
		},
		{
			name:    "too long",
			raw:     "123456789001",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "letters only",
			raw:     "not-a-cpf",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpf, err := NewCPF(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, cpf.String())
		})
	}
}
