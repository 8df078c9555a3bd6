//go:build unit

package catalog_test

import (
	"testing"

	"royalbike/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"bicycle", "accessory"} {
		k, err := catalog.ParseKind(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, k.String())
	}

	for _, invalid := range []string{"", "Bicycle", "bike", "unknown"} {
		_, err := catalog.ParseKind(invalid)
		assert.ErrorIs(t, err, catalog.ErrUnknownKind, "kind %q", invalid)
	}
}

func TestKindIsValid(t *testing.T) {
	assert.True(t, catalog.KindBicycle.IsValid())
	assert.True(t, catalog.KindAccessory.IsValid())
	assert.False(t, catalog.Kind("tricycle").IsValid())
	assert.False(t, catalog.Kind("").IsValid())
}
