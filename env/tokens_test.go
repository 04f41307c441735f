package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountUi(t *testing.T) {
	token := &Token{Symbol: "USDC", Decimal: 6}
	assert.Equal(t, "1.5", token.AmountUi(1500000).String())
	assert.Equal(t, "0.000001", token.AmountUi(1).String())
	assert.Equal(t, "0", token.AmountUi(0).String())
}
