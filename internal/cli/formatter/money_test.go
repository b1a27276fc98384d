package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	cases := map[int]string{
		0:       "₹0",
		99:      "₹99",
		100:     "₹100",
		1000:    "₹1,000",
		45000:   "₹45,000",
		125000:  "₹125,000",
		2000000: "₹2,000,000",
	}
	for amount, want := range cases {
		assert.Equal(t, want, Money(amount))
	}
}

func TestMoney_Negative(t *testing.T) {
	assert.Equal(t, "₹-1,500", Money(-1500))
}
