package realtor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_FullAddress(t *testing.T) {
	full := Address{
		Street:     "12 Marina Road",
		LGA:        "Eti-Osa",
		City:       "Lagos",
		State:      "Lagos",
		PostalCode: "106104",
		Country:    "Nigeria",
	}
	assert.Equal(t, "12 Marina Road, Eti-Osa, Lagos, Lagos, 106104, Nigeria", full.FullAddress())

	partial := Address{Street: "12 Marina Road", City: "Lagos", Country: "Nigeria"}
	assert.Equal(t, "12 Marina Road, Lagos, Nigeria", partial.FullAddress())

	padded := Address{Street: " 12 Marina Road ", City: "  "}
	assert.Equal(t, "12 Marina Road", padded.FullAddress())

	assert.Equal(t, "", Address{}.FullAddress())
}
