package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardinalityList(t *testing.T) {
	lst, err := StringToCardinalities("8:16:512")
	require.NoError(t, err)
	assert.Equal(t, []int{8, 16, 512}, lst)
	assert.Equal(t, "8:16:512", CardinalitiesToString(lst))

	empty, err := StringToCardinalities("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = StringToCardinalities("8:x")
	assert.Error(t, err)
}

func TestEpsilonList(t *testing.T) {
	lst, err := StringToEpsilons("1:5:0.25")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5, 0.25}, lst)
	assert.Equal(t, "1:5:0.25", EpsilonsToString(lst))

	_, err = StringToEpsilons("1::2")
	assert.Error(t, err)
}
