package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/Pedrohss2/cardapio-front/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "cardapio-test"
	testExpMin    = 60
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, companyID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID, "o sub deve ser o id do usuário")
	assert.Equal(t, testCompanyID, companyID, "o company_id deve sobreviver ao round trip")
}

func TestParse_SecretErrado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("outro-secret", tok)
	assert.Error(t, err, "assinatura com outro secret deve ser rejeitada")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, testIssuer, -5)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado deve ser rejeitado")
}

func TestGenerate_SecretVazio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testCompanyID, testIssuer, testExpMin)
	assert.Error(t, err)
}

// DecodeSubject é o caminho do cliente: extrai o sub sem conhecer o secret.
func TestDecodeSubject(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, testIssuer, testExpMin)
	require.NoError(t, err)

	sub, err := pkgjwt.DecodeSubject(tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, sub)
}

func TestDecodeSubject_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.DecodeSubject("token.invalido.aqui")
	assert.Error(t, err)
}
