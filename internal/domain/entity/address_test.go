package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_Ownership(t *testing.T) {
	business := &Address{OwnerKind: OwnerKindBusiness}
	customer := &Address{OwnerKind: OwnerKindCustomerProfile}

	assert.True(t, business.OwnedByBusiness())
	assert.False(t, business.OwnedByCustomer())
	assert.True(t, customer.OwnedByCustomer())
	assert.False(t, customer.OwnedByBusiness())
}

func TestAddress_FullAddress(t *testing.T) {
	addr := &Address{
		Street:       "Avenida Paulista",
		Number:       "1578",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "01310200",
		Country:      "BR",
	}

	assert.Equal(t, "Avenida Paulista, 1578, Bela Vista, São Paulo - SP, 01310200", addr.FullAddress())
}

func TestAddress_FullAddressWithComplementAndCountry(t *testing.T) {
	addr := &Address{
		Street:       "Rua das Flores",
		Number:       "s/n",
		Complement:   "Bloco B",
		Neighborhood: "Centro",
		City:         "Curitiba",
		State:        "PR",
		ZipCode:      "80010000",
		Country:      "PT",
	}

	assert.Equal(t, "Rua das Flores, s/n, Bloco B, Centro, Curitiba - PR, 80010000, PT", addr.FullAddress())
}

func TestAddress_FormattedZipCode(t *testing.T) {
	addr := &Address{ZipCode: "01310200"}
	assert.Equal(t, "01310-200", addr.FormattedZipCode())

	short := &Address{ZipCode: "1310"}
	assert.Equal(t, "1310", short.FormattedZipCode())
}
