package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAddress(t *testing.T) {
	assert.True(t, IsAddress("0x4200000000000000000000000000000000000042"))
	assert.True(t, IsAddress("0x1234567890ABCDEF1234567890abcdef12345678"))

	assert.False(t, IsAddress(""))
	assert.False(t, IsAddress("0x42"))
	assert.False(t, IsAddress("4200000000000000000000000000000000000042x"))
	assert.False(t, IsAddress("0xZZ00000000000000000000000000000000000042"))
}
