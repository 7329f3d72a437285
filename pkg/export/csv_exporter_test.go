package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRenderStartsWithBOM(t *testing.T) {
	exporter := NewCSVExporter()

	out, err := exporter.Render(Dataset{
		Headers: []string{"Nombre", "Categoría"},
		Rows: []map[string]string{
			{"Nombre": "Juan García", "Categoría": "TITULAR"},
		},
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
	assert.Equal(t, "Nombre,Categoría\nJuan García,TITULAR\n", string(out[3:]))
}

func TestCSVRenderFillsMissingCells(t *testing.T) {
	exporter := NewCSVExporter()

	out, err := exporter.Render(Dataset{
		Headers: []string{"Nombre", "Correo"},
		Rows:    []map[string]string{{"Nombre": "Ana"}},
	})

	require.NoError(t, err)
	assert.Contains(t, string(out), "Ana,\n")
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()

	_, err := exporter.Render(Dataset{})

	require.Error(t, err)
}
