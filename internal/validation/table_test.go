package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		wantErr bool
	}{
		{name: "simple", table: "clients", wantErr: false},
		{name: "with underscore and digits", table: "sales_2024", wantErr: false},
		{name: "single letter", table: "t", wantErr: false},
		{name: "empty", table: "", wantErr: true},
		{name: "starts with digit", table: "2sales", wantErr: true},
		{name: "starts with underscore", table: "_sales", wantErr: true},
		{name: "uppercase", table: "Clients", wantErr: true},
		{name: "hyphen", table: "my-table", wantErr: true},
		{name: "path traversal", table: "../etc", wantErr: true},
		{name: "too long", table: "a" + strings.Repeat("b", MaxTableNameLen), wantErr: true},
		{name: "max length", table: "a" + strings.Repeat("b", MaxTableNameLen-1), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTableName(tt.table)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
