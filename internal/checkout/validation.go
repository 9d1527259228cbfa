package checkout

import (
	"strings"

	"github.com/MounsifEd/storefront-checkout-service/internal/models"
)

func trim(s string) string {
	return strings.TrimSpace(s)
}

// ValidateShippingAddress checks that every address field is non-blank
// after trimming. All missing fields are reported in one combined
// message so the user can fix the form in a single pass.
func ValidateShippingAddress(a models.ShippingAddress) error {
	var missing []string

	if trim(a.Name) == "" {
		missing = append(missing, "name")
	}
	if trim(a.AddressLine) == "" {
		missing = append(missing, "address")
	}
	if trim(a.City) == "" {
		missing = append(missing, "city")
	}
	if trim(a.Province) == "" {
		missing = append(missing, "province")
	}
	if trim(a.PostalCode) == "" {
		missing = append(missing, "postalCode")
	}

	if len(missing) > 0 {
		return models.NewValidationError("address",
			"missing required shipping fields: "+strings.Join(missing, ", "))
	}
	return nil
}
