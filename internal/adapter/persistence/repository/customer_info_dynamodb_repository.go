package repository

import (
	"context"

	"quotechat/internal/domain/entities"
	"quotechat/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "quotation_customers"

type customerInfoItem struct {
	SessionID string `dynamodbav:"session_id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone,omitempty"`
}

// CustomerInfoDynamoRepository persists the customer contact block in
// DynamoDB, keyed by session.
//
// Table requirements:
//   - PK: session_id (string)
//
// Saving is an unconditional upsert: the user may correct their contact
// details any number of times before exporting.

type CustomerInfoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerInfoRepository = (*CustomerInfoDynamoRepository)(nil)

func NewCustomerInfoDynamoRepository(ddb *dynamodb.Client) *CustomerInfoDynamoRepository {
	return &CustomerInfoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerInfoDynamoRepository) Load(ctx context.Context, sessionID string) (entities.CustomerInfo, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CustomerInfo{}, err
	}
	if len(out.Item) == 0 {
		return entities.CustomerInfo{}, nil
	}

	var it customerInfoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CustomerInfo{}, err
	}
	return entities.CustomerInfo{Name: it.Name, Email: it.Email, Phone: it.Phone}, nil
}

func (r *CustomerInfoDynamoRepository) Save(ctx context.Context, sessionID string, info entities.CustomerInfo) error {
	av, err := attributevalue.MarshalMap(customerInfoItem{
		SessionID: sessionID,
		Name:      info.Name,
		Email:     info.Email,
		Phone:     info.Phone,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
