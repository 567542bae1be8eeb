package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Linen Shirt", "linen-shirt"},
		{"  Crème Brûlée Tee!  ", "creme-brulee-tee"},
		{"Kids' Hoodie (XS)", "kids-hoodie-xs"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.in), tt.in)
	}
}
