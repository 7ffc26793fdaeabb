package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	assert.Equal(t, "jane-smith", Make("Jane", "Smith"))
	assert.Equal(t, "jane-smith", Make("Jane  ", " Smith"))
	assert.Equal(t, "o-neill-ad-bayo", Make("O'Neill", "Adé Bayo"))
	assert.Equal(t, "jane", Make("Jane", ""))
	assert.Equal(t, "", Make("", ""))
	assert.Equal(t, "", Make("!!!"))
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "jane-smith", WithSuffix("jane-smith", 0))
	assert.Equal(t, "jane-smith", WithSuffix("jane-smith", 1))
	assert.Equal(t, "jane-smith-2", WithSuffix("jane-smith", 2))
	assert.Equal(t, "jane-smith-10", WithSuffix("jane-smith", 10))
}
