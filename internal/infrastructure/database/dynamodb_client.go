package database

import (
	"context"
	"fmt"

	"printshop_ops/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the aws.* settings.
//
// aws.endpoint (DYNAMODB_ENDPOINT) points the client at DynamoDB Local, e.g.
// http://dynamodb:8000. Local DynamoDB does not validate credentials but the
// SDK requires some, so static ones are always supplied.
func ConnectDynamoDB(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, endpointOption(cfg.AWS.Endpoint)), nil
}

func NewAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWS.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

func endpointOption(endpoint string) func(*dynamodb.Options) {
	return func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}
}
