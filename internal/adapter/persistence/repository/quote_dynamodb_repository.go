package repository

import (
	"context"
	"errors"
	"time"

	"instacar/internal/domain/entities"
	"instacar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesTokenIndex       = "access_token-index"
	quotesDisplayIDIndex   = "display_id-index"
)

type customerItem struct {
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
	Phone string `dynamodbav:"phone"`
}

type vehicleItem struct {
	Year  int    `dynamodbav:"year"`
	Make  string `dynamodbav:"make"`
	Model string `dynamodbav:"model"`
	VIN   string `dynamodbav:"vin,omitempty"`
}

type pickupItem struct {
	Date         string `dynamodbav:"date"`
	Window       string `dynamodbav:"window"`
	Address      string `dynamodbav:"address"`
	ContactName  string `dynamodbav:"contact_name"`
	ContactPhone string `dynamodbav:"contact_phone"`
}

type auditItem struct {
	Kind      string            `dynamodbav:"kind"`
	Customer  bool              `dynamodbav:"customer"`
	AdminID   string            `dynamodbav:"admin_id,omitempty"`
	Reason    string            `dynamodbav:"reason,omitempty"`
	Note      string            `dynamodbav:"note,omitempty"`
	Timestamp string            `dynamodbav:"timestamp"`
	Detail    map[string]string `dynamodbav:"detail,omitempty"`
}

type quoteItem struct {
	ID          string           `dynamodbav:"id"`
	DisplayID   string           `dynamodbav:"display_id"`
	AccessToken string           `dynamodbav:"access_token"`
	Customer    customerItem     `dynamodbav:"customer"`
	Vehicle     vehicleItem      `dynamodbav:"vehicle"`
	BasePrice   int64            `dynamodbav:"base_price"`
	Adjustments map[string]int64 `dynamodbav:"adjustments,omitempty"`
	FinalPrice  int64            `dynamodbav:"final_price"`
	Status      string           `dynamodbav:"status"`
	Pickup      *pickupItem      `dynamodbav:"pickup,omitempty"`
	ExpiresAt   string           `dynamodbav:"expires_at"`
	CreatedAt   string           `dynamodbav:"created_at"`
	UpdatedAt   string           `dynamodbav:"updated_at"`
	CompletedAt string           `dynamodbav:"completed_at,omitempty"`
	AuditLog    []auditItem      `dynamodbav:"audit_log,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: access_token-index (PK: access_token)
//   - GSI: display_id-index (PK: display_id)
//
// SaveIfStatus is the engine's only synchronization point: a PutItem
// conditioned on the stored status still matching what the caller's
// guard observed. The loser of a racing write gets ErrStatusConflict,
// never a silent overwrite.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByToken(ctx context.Context, accessToken string) (entities.Quote, error) {
	return r.queryOne(ctx, quotesTokenIndex, "access_token", accessToken)
}

func (r *QuoteDynamoRepository) GetByDisplayID(ctx context.Context, displayID string) (entities.Quote, error) {
	return r.queryOne(ctx, quotesDisplayIDIndex, "display_id", displayID)
}

func (r *QuoteDynamoRepository) queryOne(ctx context.Context, index, attr, value string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#attr = :val"),
		ExpressionAttributeNames: map[string]string{
			"#attr": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":val": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	// GSI reads are eventually consistent; re-read the base table so
	// guards evaluate against the freshest status.
	return r.GetByID(ctx, it.ID)
}

func (r *QuoteDynamoRepository) SaveIfStatus(ctx context.Context, q entities.Quote, expected entities.QuoteStatus) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, interfaces.ErrStatusConflict
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:          q.ID,
		DisplayID:   q.DisplayID,
		AccessToken: q.AccessToken,
		Customer:    customerItem{Name: q.Customer.Name, Email: q.Customer.Email, Phone: q.Customer.Phone},
		Vehicle:     vehicleItem{Year: q.Vehicle.Year, Make: q.Vehicle.Make, Model: q.Vehicle.Model, VIN: q.Vehicle.VIN},
		BasePrice:   q.BasePrice,
		Adjustments: q.Adjustments,
		FinalPrice:  q.FinalPrice,
		Status:      string(q.Status),
		ExpiresAt:   q.ExpiresAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.Pickup != nil {
		it.Pickup = &pickupItem{
			Date:         q.Pickup.Date.UTC().Format("2006-01-02"),
			Window:       q.Pickup.Window,
			Address:      q.Pickup.Address,
			ContactName:  q.Pickup.ContactName,
			ContactPhone: q.Pickup.ContactPhone,
		}
	}
	if q.CompletedAt != nil {
		it.CompletedAt = q.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	for _, e := range q.AuditLog {
		it.AuditLog = append(it.AuditLog, auditItem{
			Kind:      string(e.Kind),
			Customer:  e.Actor.Customer,
			AdminID:   e.Actor.AdminID,
			Reason:    e.Reason,
			Note:      e.Note,
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
			Detail:    e.Detail,
		})
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	q := entities.Quote{
		ID:          it.ID,
		DisplayID:   it.DisplayID,
		AccessToken: it.AccessToken,
		Customer:    entities.Customer{Name: it.Customer.Name, Email: it.Customer.Email, Phone: it.Customer.Phone},
		Vehicle:     entities.Vehicle{Year: it.Vehicle.Year, Make: it.Vehicle.Make, Model: it.Vehicle.Model, VIN: it.Vehicle.VIN},
		BasePrice:   it.BasePrice,
		Adjustments: it.Adjustments,
		FinalPrice:  it.FinalPrice,
		Status:      entities.QuoteStatus(it.Status),
		ExpiresAt:   expiresAt,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.Pickup != nil {
		date, _ := time.Parse("2006-01-02", it.Pickup.Date)
		q.Pickup = &entities.Pickup{
			Date:         date,
			Window:       it.Pickup.Window,
			Address:      it.Pickup.Address,
			ContactName:  it.Pickup.ContactName,
			ContactPhone: it.Pickup.ContactPhone,
		}
	}
	if it.CompletedAt != "" {
		completedAt, err := time.Parse(time.RFC3339Nano, it.CompletedAt)
		if err == nil {
			q.CompletedAt = &completedAt
		}
	}
	for _, e := range it.AuditLog {
		ts, _ := time.Parse(time.RFC3339Nano, e.Timestamp)
		q.AuditLog = append(q.AuditLog, entities.AuditEntry{
			Kind:      entities.ActionKind(e.Kind),
			Actor:     entities.Actor{Customer: e.Customer, AdminID: e.AdminID},
			Reason:    e.Reason,
			Note:      e.Note,
			Timestamp: ts,
			Detail:    e.Detail,
		})
	}
	return q
}
