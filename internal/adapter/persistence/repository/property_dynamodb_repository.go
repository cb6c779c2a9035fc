package repository

import (
	"context"

	"imobiliaria_xpto/internal/domain/entities"
	"imobiliaria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPropertiesTableName = "properties"

type propertyItem struct {
	ID            string `dynamodbav:"id"`
	Title         string `dynamodbav:"title"`
	Address       string `dynamodbav:"address"`
	AgentID       string `dynamodbav:"agent_id"`
	Price         int64  `dynamodbav:"price"`
	Currency      string `dynamodbav:"currency"`
	Marketability string `dynamodbav:"marketability"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// PropertyDynamoRepository persists PropertyListing entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// It never writes the marketability flag after creation: that attribute is owned
// by the purchase transactions in PurchaseDynamoRepository.

type PropertyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPropertyRepository = (*PropertyDynamoRepository)(nil)

func NewPropertyDynamoRepository(ddb *dynamodb.Client) *PropertyDynamoRepository {
	return &PropertyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPERTIES_TABLE", defaultPropertiesTableName),
	}
}

func (r *PropertyDynamoRepository) Create(ctx context.Context, p entities.PropertyListing) (entities.PropertyListing, error) {
	av, err := attributevalue.MarshalMap(toPropertyItem(p))
	if err != nil {
		return entities.PropertyListing{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PropertyListing{}, err
	}
	return p, nil
}

func (r *PropertyDynamoRepository) GetByID(ctx context.Context, id string) (entities.PropertyListing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PropertyListing{}, err
	}
	if len(out.Item) == 0 {
		return entities.PropertyListing{}, nil
	}

	var it propertyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PropertyListing{}, err
	}
	return fromPropertyItem(it), nil
}

func (r *PropertyDynamoRepository) List(ctx context.Context, marketability entities.Marketability) ([]entities.PropertyListing, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if marketability != "" {
		in.FilterExpression = aws.String("#marketability = :m")
		in.ExpressionAttributeNames = map[string]string{"#marketability": "marketability"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":m": &types.AttributeValueMemberS{Value: string(marketability)},
		}
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}

	listings := make([]entities.PropertyListing, 0, len(out.Items))
	for _, raw := range out.Items {
		var it propertyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		listings = append(listings, fromPropertyItem(it))
	}
	return listings, nil
}

func toPropertyItem(p entities.PropertyListing) propertyItem {
	return propertyItem{
		ID:            p.ID,
		Title:         p.Title,
		Address:       p.Address,
		AgentID:       p.AgentID,
		Price:         p.Price.Amount,
		Currency:      string(p.Price.Currency),
		Marketability: string(p.Marketability),
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromPropertyItem(it propertyItem) entities.PropertyListing {
	return entities.PropertyListing{
		ID:            it.ID,
		Title:         it.Title,
		Address:       it.Address,
		AgentID:       it.AgentID,
		Price:         entities.Money{Amount: it.Price, Currency: entities.Currency(it.Currency)},
		Marketability: entities.Marketability(it.Marketability),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
