package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("  Hardware ")
	require.NoError(t, err)
	assert.Equal(t, "Hardware", c.Name())
	assert.Zero(t, c.ID())

	_, err = NewCategory("   ")
	assert.Error(t, err)

	require.NoError(t, c.SetID(4))
	assert.Error(t, c.SetID(5))
}
