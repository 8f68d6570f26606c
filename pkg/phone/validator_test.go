package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got, err := Normalize("+1 650-253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, "+16502530000", got)

	got, err = Normalize("650-253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, "+16502530000", got)
}

func TestNormalize_Invalid(t *testing.T) {
	_, err := Normalize("12345", "US")
	assert.Error(t, err)

	_, err = Normalize("not a number", "US")
	assert.Error(t, err)
}
