package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want string
	}{
		{"Mina Girgis", SizeDefault, "MG"},
		{"Mina Girgis", SizeSmall, "M"},
		{"fr.daniel", SizeLarge, "FD"},
		{"abouna", SizeXL, "A"},
		{"  ", SizeDefault, "?"},
		{"", Size2XL, "?"},
		{"Anba Bishoy El Anba", SizeDefault, "AA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.name, tt.size))
		})
	}
}

func TestRenderContainsInitials(t *testing.T) {
	assert.Contains(t, Render("Mina Girgis", Size2XL), "MG")
}
