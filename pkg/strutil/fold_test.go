package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pedrohss2/cardapio-front/pkg/strutil"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "cafe com acucar", strutil.Fold("Café com Açúcar"))
	assert.Equal(t, "pao de queijo", strutil.Fold("PÃO DE QUEIJO"))
	assert.Equal(t, "", strutil.Fold(""))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, strutil.ContainsFold("Pão de Queijo", "pao"))
	assert.True(t, strutil.ContainsFold("Açaí na tigela", "ACAI"))
	assert.False(t, strutil.ContainsFold("Suco de laranja", "limão"))
}
