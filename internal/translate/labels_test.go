package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLabels() *Labels {
	c := NewMemoryCatalog()
	c.SetAll(map[string]string{
		"activities.attributes.purchase_order.status": "Order status",
		"validation.attributes.status":                "Status",
		"validation.attributes.email":                 "Email address",
		"activities.models.purchase_order":            "Purchase order",
	})
	return NewLabels(c)
}

func TestLabels_PerModelNamespaceWins(t *testing.T) {
	l := testLabels()
	assert.Equal(t, "Order status", l.LabelFor("status", "PurchaseOrder"))
}

func TestLabels_ValidationNamespaceFallback(t *testing.T) {
	l := testLabels()
	// No per-model mapping for User, so the validation namespace applies.
	assert.Equal(t, "Status", l.LabelFor("status", "User"))
	assert.Equal(t, "Email address", l.LabelFor("email", ""))
}

func TestLabels_HumanizedFallback(t *testing.T) {
	l := testLabels()
	assert.Equal(t, "Shipping address line", l.LabelFor("shipping_address_line", "User"))
}

func TestLabels_ModelLabel(t *testing.T) {
	l := testLabels()
	assert.Equal(t, "Purchase order", l.ModelLabel("PurchaseOrder"))
	// Qualified type names resolve by their final segment.
	assert.Equal(t, "Purchase order", l.ModelLabel("shop/models/PurchaseOrder"))
	// Unmapped types fall back to the unqualified name.
	assert.Equal(t, "Invoice", l.ModelLabel("billing.Invoice"))
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"PurchaseOrder": "purchase_order",
		"User":          "user",
		"HTTPServer":    "http_server",
		"already_snake": "already_snake",
		"APIKey":        "api_key",
	}
	for in, want := range cases {
		assert.Equal(t, want, SnakeCase(in), in)
	}
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Last login at", Humanize("last_login_at"))
	assert.Equal(t, "Name", Humanize("name"))
	assert.Equal(t, "", Humanize(""))
}
