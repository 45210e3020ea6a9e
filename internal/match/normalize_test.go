package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"orderId", "orderid"},
		{"ORDERID", "orderid"},

		// CamelCase variations
		{"firstName", "firstname"},
		{"FirstName", "firstname"},
		{"XMLParser", "xmlparser"},
		{"getHTTPResponse", "gethttpresponse"},

		// With separators
		{"first_name", "firstname"},
		{"FIRST_NAME", "firstname"},
		{"first name", "firstname"},
		{"order_item-ID", "orderitemid"},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{"ID", "id"},
		{"__", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"order", "id"}, TokenizeIdent("OrderID"))
	assert.Equal(t, []string{"xml", "parser"}, TokenizeIdent("XMLParser"))
	assert.Equal(t, []string{"last", "name"}, TokenizeIdent("last_name"))
	assert.Nil(t, TokenizeIdent(""))
}
