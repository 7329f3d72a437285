package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uci-sgcd/panel-api/internal/models"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
)

func TestDecodeListBareArray(t *testing.T) {
	raw := []byte(`[{"id":1,"first_name":"Juan"},{"id":2,"first_name":"Luisa"}]`)

	out, err := decodeList[models.ProfessorRecord](raw)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Juan", out[0].FirstName)
}

func TestDecodeListResultsEnvelope(t *testing.T) {
	raw := []byte(`{"count":2,"next":null,"results":[{"id":1},{"id":2}]}`)

	out, err := decodeList[models.ProfessorRecord](raw)

	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestDecodeListEmptyBody(t *testing.T) {
	out, err := decodeList[models.ProfessorRecord](nil)

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestDecodeListMalformed(t *testing.T) {
	_, err := decodeList[models.ProfessorRecord]([]byte(`[{"id":`))

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}

func TestExtractMessagePrefersDetail(t *testing.T) {
	assert.Equal(t, "boom", extractMessage([]byte(`{"detail":"boom"}`)))
	assert.Equal(t, "email: inválido", extractMessage([]byte(`{"email":["inválido"]}`)))
	assert.Empty(t, extractMessage([]byte(`not json`)))
}
