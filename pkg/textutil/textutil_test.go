package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donamed/donamed-api/pkg/textutil"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Acetaminofén", "acetaminofen"},
		{"IBUPROFENO", "ibuprofeno"},
		{"  Loratadina 10mg  ", "loratadina 10mg"},
		{"ungüento", "unguento"},
		{"Ñ", "n"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, textutil.Normalizar(c.entrada), "entrada %q", c.entrada)
	}
}
