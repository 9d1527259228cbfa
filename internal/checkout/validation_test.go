package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MounsifEd/storefront-checkout-service/internal/models"
)

func TestValidateShippingAddress(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ShippingAddress)
		missing []string
	}{
		{"complete address", func(a *models.ShippingAddress) {}, nil},
		{"blank name", func(a *models.ShippingAddress) { a.Name = " " }, []string{"name"}},
		{"blank address line", func(a *models.ShippingAddress) { a.AddressLine = "" }, []string{"address"}},
		{"blank province", func(a *models.ShippingAddress) { a.Province = "\t" }, []string{"province"}},
		{
			"everything blank",
			func(a *models.ShippingAddress) { *a = models.ShippingAddress{} },
			[]string{"name", "address", "city", "province", "postalCode"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := validAddress()
			tt.mutate(&addr)

			err := ValidateShippingAddress(addr)
			if len(tt.missing) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			for _, field := range tt.missing {
				assert.Contains(t, verr.Message, field)
			}
		})
	}
}
