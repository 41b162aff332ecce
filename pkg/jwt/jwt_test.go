package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/dguzman/staffing-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "staffing-test"
)

func TestGenerateYParse(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testUserID, "manager", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "manager", role)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "admin", testIssuer, 60)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testUserID, "admin", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret", token)
	assert.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testUserID, "admin", testIssuer, -5)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParse_Basura(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}
