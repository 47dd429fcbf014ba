package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestNormalizeCityName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Lowercased", input: "London", expected: "london"},
		{name: "Diacritics", input: "São Paulo", expected: "sao paulo"},
		{name: "Umlaut", input: "Zürich", expected: "zurich"},
		{name: "AllCaps", input: "TOKYO", expected: "tokyo"},
		{name: "Whitespace", input: "  Reykjavik  ", expected: "reykjavik"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := normalizeCityName(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestNormalizeCityNameInvalidUTF8(t *testing.T) {
	_, err := normalizeCityName("bad\xffinput")
	assert.Error(t, err)
}

func TestNormalizeCityNameTransformError(t *testing.T) {
	original := transformString
	transformString = func(tr transform.Transformer, s string) (string, int, error) {
		return "", 0, errors.New("transform failed")
	}
	defer func() { transformString = original }()

	_, err := normalizeCityName("London")
	assert.EqualError(t, err, "transform failed")
}
