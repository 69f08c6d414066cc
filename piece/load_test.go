package piece_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ABakker30/ballpuzzle3/piece"
)

func TestLoadFormatA(t *testing.T) {
	data := []byte(`{
		"A": [
			[[0,0,0],[1,1,0],[1,0,1],[0,1,1]],
			[[0,0,0],[1,0,0],[0,1,0],[0,0,1]]
		]
	}`)
	lib, err := piece.Load(data)
	require.NoError(t, err)
	require.Contains(t, lib, "A")
	assert.Len(t, lib["A"], 2)
	assert.True(t, lib["A"][0].HasZeroAnchor())
}

func TestLoadFormatBGroupsByPrefix(t *testing.T) {
	data := []byte(`{
		"A__0": [[0,0,0],[1,1,0],[1,0,1],[0,1,1]],
		"A__1": [[0,0,0],[1,0,0],[0,1,0],[0,0,1]],
		"B__0": [[0,0,0],[1,0,0],[2,0,0],[3,0,0]]
	}`)
	lib, err := piece.Load(data)
	require.NoError(t, err)
	require.Contains(t, lib, "A")
	require.Contains(t, lib, "B")
	assert.Len(t, lib["A"], 2)
	assert.Len(t, lib["B"], 1)
}

func TestLoadRejectsMalformed(t *testing.T) {
	_, err := piece.Load([]byte(`not json`))
	assert.ErrorIs(t, err, piece.ErrInvalidPieceLibrary)

	_, err = piece.Load([]byte(`{}`))
	assert.ErrorIs(t, err, piece.ErrInvalidPieceLibrary)

	_, err = piece.Load([]byte(`{"A": 42}`))
	assert.ErrorIs(t, err, piece.ErrInvalidPieceLibrary)
}

func TestLibraryIDsSorted(t *testing.T) {
	lib := piece.Library{
		"C": nil,
		"A": nil,
		"B": nil,
	}
	assert.Equal(t, []string{"A", "B", "C"}, lib.IDs())
}
