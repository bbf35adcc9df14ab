package database

import (
	"go-airline-tickets/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// InitDynamoDB 建立 DynamoDB client，Endpoint 不為空時指向 dynamodb-local
func InitDynamoDB(config *config.DynamoDBConfig) (*dynamodb.DynamoDB, error) {
	awsConfig := aws.NewConfig().WithRegion(config.Region)
	if config.Endpoint != "" {
		awsConfig = awsConfig.WithEndpoint(config.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, err
	}

	return dynamodb.New(sess), nil
}
