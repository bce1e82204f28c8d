package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quote-engine/internal/core/logger"
	"quote-engine/internal/features/distance/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCentroids = "US\t85001\tPhoenix\tArizona\tAZ\tMaricopa\t013\t\t\t33.4484\t-112.074\t4\n" +
	"US\t10001\tNew York\tNew York\tNY\tNew York\t061\t\t\t40.7484\t-73.9967\t4\n" +
	"US\t99999\tBroken\tNowhere\tXX\t\t\t\t\tnot-a-lat\t-1\t4\n" +
	"short\trow\n"

func TestMain(m *testing.M) {
	logger.Init("development", "error")
	os.Exit(m.Run())
}

func newSampleProvider(t *testing.T) *HaversineProvider {
	t.Helper()
	p, err := NewHaversineProviderFromReader(strings.NewReader(sampleCentroids))
	require.NoError(t, err)
	return p
}

func TestHaversineProvider_DistanceMiles(t *testing.T) {
	p := newSampleProvider(t)

	miles, err := p.DistanceMiles(context.Background(), "85001", "10001")
	require.NoError(t, err)
	// Phoenix to Manhattan is roughly 2140 great-circle miles.
	assert.InDelta(t, 2140, miles, 25)

	t.Run("ZipPlusFour", func(t *testing.T) {
		got, err := p.DistanceMiles(context.Background(), "85001-1234", "10001")
		require.NoError(t, err)
		assert.Equal(t, miles, got)
	})

	t.Run("SameZip", func(t *testing.T) {
		got, err := p.DistanceMiles(context.Background(), "85001", "85001")
		require.NoError(t, err)
		assert.Zero(t, got)
	})
}

func TestHaversineProvider_Errors(t *testing.T) {
	p := newSampleProvider(t)

	_, err := p.DistanceMiles(context.Background(), "123", "10001")
	assert.ErrorIs(t, err, domain.ErrInvalidZip)

	_, err = p.DistanceMiles(context.Background(), "85001", "99999")
	assert.ErrorIs(t, err, domain.ErrZipNotFound, "rows with bad coordinates are skipped")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.DistanceMiles(ctx, "85001", "10001")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewHaversineProvider(t *testing.T) {
	t.Run("FromFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "US.txt")
		require.NoError(t, os.WriteFile(path, []byte(sampleCentroids), 0644))

		p, err := NewHaversineProvider(path)
		require.NoError(t, err)
		assert.Len(t, p.centroids, 2)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := NewHaversineProvider(filepath.Join(t.TempDir(), "missing.txt"))
		assert.Error(t, err)
	})

	t.Run("NoRows", func(t *testing.T) {
		_, err := NewHaversineProviderFromReader(strings.NewReader(""))
		assert.Error(t, err)
	})
}
