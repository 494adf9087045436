package entity

// Address is a postal address under users/{uid}/profile/addresses/{key}.
// Every field is required; validation rejects the first missing one by name.
type Address struct {
	LineOne string `json:"lineOne" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// AddressRequiredFields is the fixed required-field list, in validation order.
var AddressRequiredFields = []string{"lineOne", "city", "state", "zip", "country"}
