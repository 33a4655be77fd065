package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSV(t *testing.T) {
	out, err := ToCSV([]string{"patrimonio", "Marca", "Obs"}, [][]string{
		{"1001", "Dell"},
		{"1002", "LG", "tela, riscada"},
	})
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(out, utf8BOM))
	assert.Equal(t, "patrimonio,Marca,Obs\n1001,Dell,\n1002,LG,\"tela, riscada\"\n", string(out[len(utf8BOM):]))
}

func TestToJSONL(t *testing.T) {
	type row struct {
		ID int    `json:"id"`
		V  string `json:"v"`
	}

	out, err := ToJSONL([]row{{1, "a"}, {2, "b"}})
	require.NoError(t, err)
	assert.Equal(t, "{\"id\":1,\"v\":\"a\"}\n{\"id\":2,\"v\":\"b\"}\n", string(out))

	empty, err := ToJSONL([]row{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}
