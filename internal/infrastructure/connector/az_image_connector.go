package connector

import (
	"context"
	"fmt"
	"io"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// AzureImageConnector stores images as block blobs named by their storage path
type AzureImageConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureImageConnector creates the connector and its container when missing
func NewAzureImageConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (images.ImageConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings.CloudProvider != config.AzureCloudProvider {
		return nil, fmt.Errorf("unsupported cloud provider: %s (only Azure is supported)", settings.CloudProvider)
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &AzureImageConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

// Upload writes content to storagePath with its content type
func (c *AzureImageConnector) Upload(ctx context.Context, storagePath string, content io.Reader, contentType string) error {
	opts := &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	}
	if _, err := c.client.UploadStream(ctx, c.containerName, storagePath, content, opts); err != nil {
		return fmt.Errorf("failed to upload image %s: %w", storagePath, err)
	}

	c.logger.Info("Uploaded image to ", storagePath)
	return nil
}

// Download opens the blob at storagePath; the caller closes the reader
func (c *AzureImageConnector) Download(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	resp, err := c.client.DownloadStream(ctx, c.containerName, storagePath, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, images.ErrNotFound
		}
		return nil, fmt.Errorf("failed to download image %s: %w", storagePath, err)
	}
	return resp.Body, nil
}

// Delete removes the blob at storagePath
func (c *AzureImageConnector) Delete(ctx context.Context, storagePath string) error {
	if _, err := c.client.DeleteBlob(ctx, c.containerName, storagePath, nil); err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return images.ErrNotFound
		}
		return fmt.Errorf("failed to delete image %s: %w", storagePath, err)
	}

	c.logger.Info("Deleted image ", storagePath)
	return nil
}
