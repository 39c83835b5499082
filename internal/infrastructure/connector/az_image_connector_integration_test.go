//go:build integration
// +build integration

package connector

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImageConnector(t *testing.T) images.ImageConnector {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	settings := &config.BlobConnectorSettings{
		CloudProvider:    TestCloudProvider,
		ConnectionString: TestConnectionString,
		ContainerName:    TestContainerName,
	}

	conn, err := NewAzureImageConnector(context.Background(), settings, logger)
	require.NoError(t, err)
	return conn
}

func TestAzureImageConnector_UploadDownloadDelete(t *testing.T) {
	conn := newTestImageConnector(t)
	ctx := context.Background()

	content := append(append([]byte{}, testutil.PNGHeader...), []byte("pixels")...)
	path := images.StoragePath(images.EntityService, uuid.NewString(), uuid.NewString(), "png")

	err := conn.Upload(ctx, path, bytes.NewReader(content), "image/png")
	require.NoError(t, err)

	rc, err := conn.Download(ctx, path)
	require.NoError(t, err)
	downloaded, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, content, downloaded)

	require.NoError(t, conn.Delete(ctx, path))

	_, err = conn.Download(ctx, path)
	assert.ErrorIs(t, err, images.ErrNotFound)
}

func TestAzureImageConnector_Delete_Missing(t *testing.T) {
	conn := newTestImageConnector(t)

	err := conn.Delete(context.Background(), "service/missing/missing.png")
	assert.ErrorIs(t, err, images.ErrNotFound)
}

func TestNewAzureImageConnector_UnsupportedProvider(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	settings := &config.BlobConnectorSettings{
		CloudProvider:    config.AwsCloudProvider,
		ConnectionString: TestConnectionString,
		ContainerName:    TestContainerName,
	}

	_, err := NewAzureImageConnector(context.Background(), settings, logger)
	assert.Error(t, err)
}
