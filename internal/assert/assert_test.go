package assert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnodb/rhombus-sub000/internal/assert"
)

func TestThat(t *testing.T) {
	require.NotPanics(t, func() { assert.That(true, "never") })
	if assert.Enabled() {
		require.PanicsWithValue(t, "invariant violated: x=3", func() { assert.That(false, "x=%d", 3) })
	} else {
		require.NotPanics(t, func() { assert.That(false, "x=%d", 3) })
	}
}
