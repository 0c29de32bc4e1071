package urlparser_test

import (
	"testing"

	"storefront/pkg/lib/urlparser"

	"github.com/stretchr/testify/assert"
)

func TestProductId(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    int
		wantErr bool
	}{
		{"Valid add_to_cart path", "/add_to_cart/3", "add_to_cart", 3, false},
		{"Valid product path", "/product/12", "product", 12, false},
		{"Trailing slash", "/product/12/", "product", 12, false},
		{"Wrong prefix", "/cart/3", "product", 0, true},
		{"Non-numeric id", "/product/abc", "product", 0, true},
		{"Missing id", "/product", "product", 0, true},
		{"Extra segments", "/product/3/comments", "product", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := urlparser.ProductId(tt.path, tt.prefix)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
