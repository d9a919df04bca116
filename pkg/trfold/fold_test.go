package trfold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLower(t *testing.T) {
	assert.Equal(t, "ırmak", Lower("IRMAK"))
	assert.Equal(t, "istanbul", Lower("İSTANBUL"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "kahramanmaras", Fold("Kahramanmaraş"))
	assert.Equal(t, "cigdem", Fold("Çiğdem"))
	assert.Equal(t, "usak", Fold("UŞAK"))
	assert.Equal(t, Fold("hayir"), Fold("hayır"))
}
