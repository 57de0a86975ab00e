package aws

import (
	"context"
	"fmt"

	"weather-api/pkg/resource"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// LoadConfig builds the AWS config from app.cloud.*, falling back to the default credential chain
func LoadConfig(ctx context.Context) (aws.Config, error) {
	options := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	if accessKey := resource.GetString("app.cloud.aws-access-key-id"); accessKey != "" {
		if secretKey := resource.GetString("app.cloud.aws-secret-access-key"); secretKey != "" {
			options = append(options, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
			))
		}
	}

	cfg, err := config.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// LocalStack
	if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
		cfg.BaseEndpoint = aws.String(endpoint)
	}

	return cfg, nil
}
