package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Furniture", "furniture"},
		{"spaces", "Home Office", "home-office"},
		{"punctuation", "Oak & Co Furniture", "oak-co-furniture"},
		{"leading and trailing noise", "  --Desks!  ", "desks"},
		{"digits kept", "Top 10 Deals", "top-10-deals"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
