package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ABakker30/ballpuzzle3/container"
	"github.com/ABakker30/ballpuzzle3/lattice"
)

func TestLoadValid(t *testing.T) {
	data := []byte(`{
		"lattice": "FCC",
		"version": 1,
		"r": 0.5,
		"meta": {"name": "Roof"},
		"cells": [[0,0,0],[1,1,0],[1,0,1],[0,1,1]]
	}`)
	c, err := container.Load(data)
	require.NoError(t, err)
	assert.Equal(t, "FCC", c.Lattice)
	assert.Equal(t, 0.5, c.R)
	assert.Equal(t, "Roof", c.Meta["name"])
	require.Len(t, c.Cells, 4)
	assert.Equal(t, lattice.Cell{I: 0, J: 0, K: 0}, c.Cells[0])
}

func TestLoadRejectsMalformed(t *testing.T) {
	_, err := container.Load([]byte(`not json`))
	assert.ErrorIs(t, err, container.ErrInvalidContainer)
}

func TestLoadRejectsEmptyCells(t *testing.T) {
	_, err := container.Load([]byte(`{"cells": []}`))
	assert.ErrorIs(t, err, container.ErrInvalidContainer)

	_, err = container.Load([]byte(`{}`))
	assert.ErrorIs(t, err, container.ErrInvalidContainer)
}
