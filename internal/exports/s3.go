// Where: cli/internal/exports/s3.go
// What: S3-backed legacy config fetcher.
// Why: Teams keep generated configs in buckets; support local stacks too.
package exports

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/poruru/amplify-config-bridge/cli/internal/constants"
	"github.com/poruru/amplify-config-bridge/cli/internal/envutil"
)

// S3Fetcher retrieves objects with the AWS SDK. The client is built lazily
// on first fetch and reused afterwards.
type S3Fetcher struct {
	clientOnce sync.Once
	clientErr  error
	client     *s3.Client
}

// NewS3Fetcher creates a fetcher using the default credential chain,
// honoring host-level endpoint and credential overrides for local stacks.
func NewS3Fetcher() *S3Fetcher {
	return &S3Fetcher{}
}

// Fetch downloads the object and returns its payload.
func (f *S3Fetcher) Fetch(ctx context.Context, location S3Location) ([]byte, error) {
	client, err := f.getClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(location.Bucket),
		Key:    aws.String(location.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch s3://%s/%s: %w", location.Bucket, location.Key, err)
	}
	defer out.Body.Close()

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", location.Bucket, location.Key, err)
	}
	return payload, nil
}

func (f *S3Fetcher) getClient(ctx context.Context) (*s3.Client, error) {
	f.clientOnce.Do(func() {
		cfg, err := loadAWSConfig(ctx)
		if err != nil {
			f.clientErr = err
			return
		}
		endpoint := envutil.GetHostEnv(constants.HostSuffixS3Endpoint)
		f.client = s3.NewFromConfig(cfg, func(options *s3.Options) {
			if endpoint != "" {
				options.BaseEndpoint = aws.String(endpoint)
				options.UsePathStyle = true
			}
		})
	})
	return f.client, f.clientErr
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	var options []func(*config.LoadOptions) error

	region := envutil.GetHostEnv(constants.HostSuffixS3Region)
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region != "" {
		options = append(options, config.WithRegion(region))
	}

	accessKey := envutil.GetHostEnv(constants.HostSuffixAccessKey)
	secretKey := envutil.GetHostEnv(constants.HostSuffixSecretKey)
	if accessKey != "" && secretKey != "" {
		creds := credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")
		options = append(options, config.WithCredentialsProvider(creds))
	}

	cfg, err := config.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}
