package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viafiscal/custoreal-api/pkg/jwt"
)

func TestGenerateEParseRoundTrip(t *testing.T) {
	token, err := jwt.Generate("segredo", "u-1", "org-1", "admin", "custoreal", 5)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, orgID, role, err := jwt.Parse("segredo", token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "org-1", orgID)
	assert.Equal(t, "admin", role)
}

func TestParseRejeitaSecretErrado(t *testing.T) {
	token, err := jwt.Generate("segredo", "u-1", "org-1", "admin", "custoreal", 5)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("outro-segredo", token)
	assert.Error(t, err)
}

func TestGenerateExigeSecret(t *testing.T) {
	_, err := jwt.Generate("", "u-1", "org-1", "admin", "custoreal", 5)
	assert.Error(t, err)
}
