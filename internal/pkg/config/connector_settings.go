package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Cloud provider constants for the image storage connector
const (
	AzureCloudProvider = "azure"
	AwsCloudProvider   = "aws"
	GcpCloudProvider   = "gcp"
)

// BlobConnectorSettings configures the object storage that holds uploaded images
type BlobConnectorSettings struct {
	CloudProvider    string `yaml:"cloud_provider" envconfig:"CLOUD_PROVIDER" validate:"required,oneof=azure aws gcp"`
	ConnectionString string `yaml:"connection_string" envconfig:"CONNECTION_STRING" validate:"required"`
	ContainerName    string `yaml:"container_name" envconfig:"CONTAINER_NAME" validate:"required"`
}

// Validate checks that all fields in BlobConnectorSettings are valid
func (s *BlobConnectorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BlobConnectorSettings: %w", err)
	}
	return nil
}
