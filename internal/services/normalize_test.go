package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"vest":             "VEST",
		"  Vest  Medium  ": "VEST MEDIUM",
		"VEST\t\tMEDIUM":   "VEST MEDIUM",
		"kaos   polos":     "KAOS POLOS",
		"":                 "",
		"   ":              "",
	}

	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"vest medium", "  Vest  ", "KAOS  panjang ", "", "a b  c"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestIsVestItem(t *testing.T) {
	assert.True(t, IsVestItem("vest"))
	assert.True(t, IsVestItem("Vest Medium"))
	assert.True(t, IsVestItem("  rompi VEST keren "))
	assert.False(t, IsVestItem("kaos"))
	assert.False(t, IsVestItem(""))
}
