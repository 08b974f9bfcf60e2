package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo_bar-baz", "fooBarBaz"},
		{"hello__world", "helloWorld"},
		{"HTTP_server", "httpServer"},
		{"created-at", "createdAt"},
		{"already", "already"},
		{"Name", "name"},
		{"with space_and-dash", "withSpaceAndDash"},
		{"foo1bar_baz", "foo1BarBaz"},
		{"foo_bar2baz", "fooBar2Baz"},
		{"it's_ok", "it'SOk"},
		{"x9_y", "x9Y"},
		{"élan_über", "élanÜber"},
		{"", ""},
		{"___", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CamelCase(tt.in), "CamelCase(%q)", tt.in)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FooBarBaz", "foo_bar_baz"},
		{"fooBarBaz", "foo_bar_baz"},
		{"createdAt", "created_at"},
		{"HTTPServer", "h_t_t_p_server"},
		{"already_snake", "already_snake"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SnakeCase(tt.in), "SnakeCase(%q)", tt.in)
	}
}

func TestCamelSnakeRoundTrip(t *testing.T) {
	for _, s := range []string{"foo_bar_baz", "user_id", "created_at"} {
		assert.Equal(t, s, SnakeCase(CamelCase(s)))
	}
}
