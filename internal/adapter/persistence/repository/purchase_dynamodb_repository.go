package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"imobiliaria_xpto/internal/domain/entities"
	"imobiliaria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPurchasesTableName = "purchases"
	defaultPaymentsTableName  = "payments"
	paymentsPurchaseIDIndex   = "purchase_id-index"
)

type purchaseItem struct {
	ID                string `dynamodbav:"id"`
	PropertyID        string `dynamodbav:"property_id"`
	BuyerID           string `dynamodbav:"buyer_id"`
	TotalAmount       int64  `dynamodbav:"total_amount"`
	RemainingAmount   int64  `dynamodbav:"remaining_amount"`
	Currency          string `dynamodbav:"currency"`
	Status            string `dynamodbav:"status"`
	PaymentsApplied   int    `dynamodbav:"payments_applied"`
	ClosedWithBalance bool   `dynamodbav:"closed_with_balance"`
	Notes             string `dynamodbav:"notes,omitempty"`
	Version           int64  `dynamodbav:"version"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
	CompletedAt       string `dynamodbav:"completed_at,omitempty"`
}

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	PurchaseID        string `dynamodbav:"purchase_id"`
	Amount            int64  `dynamodbav:"amount"`
	Currency          string `dynamodbav:"currency"`
	Method            string `dynamodbav:"method"`
	Status            string `dynamodbav:"status"`
	Sequence          int    `dynamodbav:"sequence"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	Notes             string `dynamodbav:"notes,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// PurchaseDynamoRepository persists Purchase and Payment entities in DynamoDB.
//
// Table requirements:
//   - purchases: PK id (string)
//   - payments:  PK id (string), GSI purchase_id-index (PK: purchase_id)
//   - properties: PK id (string) — the marketability flag lives there and is
//     written only from within purchase transactions
//
// Monetary amounts are stored as integer minor units, never floats.
//
// All writes go through TransactWriteItems so the sequence {payment record,
// balance/status update, property flag change} commits as one unit. The
// purchase item carries a version attribute; writes condition on the version
// the caller loaded, which serializes concurrent payments per purchase.

type PurchaseDynamoRepository struct {
	ddb                 *dynamodb.Client
	tableName           string
	paymentsTableName   string
	propertiesTableName string
}

var _ interfaces.IPurchaseRepository = (*PurchaseDynamoRepository)(nil)

func NewPurchaseDynamoRepository(ddb *dynamodb.Client) *PurchaseDynamoRepository {
	return &PurchaseDynamoRepository{
		ddb:                 ddb,
		tableName:           getenvDefault("PURCHASES_TABLE", defaultPurchasesTableName),
		paymentsTableName:   getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		propertiesTableName: getenvDefault("PROPERTIES_TABLE", defaultPropertiesTableName),
	}
}

func (r *PurchaseDynamoRepository) CreatePurchase(ctx context.Context, p entities.Purchase, downPayment *entities.Payment, reserve entities.MarketabilityUpdate) (entities.Purchase, error) {
	purchaseAV, err := attributevalue.MarshalMap(toPurchaseItem(p))
	if err != nil {
		return entities.Purchase{}, err
	}

	// Item order matters: cancellation reasons come back index-aligned.
	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     purchaseAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.propertiesTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: reserve.PropertyID},
				},
				UpdateExpression:    aws.String("SET #marketability = :m, #updated_at = :updated_at"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #marketability = :available"),
				ExpressionAttributeNames: map[string]string{
					"#id":            "id",
					"#marketability": "marketability",
					"#updated_at":    "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":m":          &types.AttributeValueMemberS{Value: string(reserve.Marketability)},
					":available":  &types.AttributeValueMemberS{Value: string(entities.MarketabilityAvailable)},
					":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now().UTC())},
				},
			},
		},
	}
	conflictAt := map[int]error{
		0: interfaces.ErrDuplicateID,
		1: interfaces.ErrPropertyStateConflict,
	}

	if downPayment != nil {
		paymentAV, err := attributevalue.MarshalMap(toPaymentItem(*downPayment))
		if err != nil {
			return entities.Purchase{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.paymentsTableName),
				Item:                     paymentAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
		conflictAt[2] = interfaces.ErrDuplicateID
	}

	if err := r.transact(ctx, items, conflictAt); err != nil {
		return entities.Purchase{}, err
	}
	return p, nil
}

func (r *PurchaseDynamoRepository) CommitTransition(ctx context.Context, p entities.Purchase, expectedVersion int64, payment *entities.Payment, update *entities.MarketabilityUpdate) (entities.Purchase, error) {
	purchaseAV, err := attributevalue.MarshalMap(toPurchaseItem(p))
	if err != nil {
		return entities.Purchase{}, err
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     purchaseAV,
				ConditionExpression:      aws.String("attribute_exists(#id) AND #version = :expected"),
				ExpressionAttributeNames: map[string]string{"#id": "id", "#version": "version"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected": &types.AttributeValueMemberN{Value: formatInt(expectedVersion)},
				},
			},
		},
	}
	conflictAt := map[int]error{0: interfaces.ErrPurchaseVersionConflict}

	if payment != nil {
		paymentAV, err := attributevalue.MarshalMap(toPaymentItem(*payment))
		if err != nil {
			return entities.Purchase{}, err
		}
		conflictAt[len(items)] = interfaces.ErrDuplicateID
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.paymentsTableName),
				Item:                     paymentAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
	}

	if update != nil {
		conflictAt[len(items)] = interfaces.ErrPropertyStateConflict
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.propertiesTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: update.PropertyID},
				},
				UpdateExpression:    aws.String("SET #marketability = :m, #updated_at = :updated_at"),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id":            "id",
					"#marketability": "marketability",
					"#updated_at":    "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":m":          &types.AttributeValueMemberS{Value: string(update.Marketability)},
					":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now().UTC())},
				},
			},
		})
	}

	if err := r.transact(ctx, items, conflictAt); err != nil {
		return entities.Purchase{}, err
	}
	return p, nil
}

// transact runs the items and maps per-item conditional failures to the
// storage-level conflict errors declared in the interfaces package.
func (r *PurchaseDynamoRepository) transact(ctx context.Context, items []types.TransactWriteItem, conflictAt map[int]error) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err == nil {
		return nil
	}

	var cancelled *types.TransactionCanceledException
	if errors.As(err, &cancelled) {
		for i, reason := range cancelled.CancellationReasons {
			if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
				continue
			}
			if mapped, ok := conflictAt[i]; ok {
				return mapped
			}
		}
	}
	return err
}

func (r *PurchaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Purchase, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Purchase{}, err
	}
	if len(out.Item) == 0 {
		return entities.Purchase{}, nil
	}

	var it purchaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Purchase{}, err
	}
	return fromPurchaseItem(it), nil
}

func (r *PurchaseDynamoRepository) ListPaymentsByPurchaseID(ctx context.Context, purchaseID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.paymentsTableName),
		IndexName:              aws.String(paymentsPurchaseIDIndex),
		KeyConditionExpression: aws.String("purchase_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: purchaseID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	// The ledger view is commit order, not whatever order the index returns.
	sort.Slice(payments, func(i, j int) bool { return payments[i].Sequence < payments[j].Sequence })
	return payments, nil
}

func (r *PurchaseDynamoRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Purchase, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#created_at BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
		},
	})
	if err != nil {
		return nil, err
	}

	purchases := make([]entities.Purchase, 0, len(out.Items))
	for _, raw := range out.Items {
		var it purchaseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		purchases = append(purchases, fromPurchaseItem(it))
	}
	return purchases, nil
}

func toPurchaseItem(p entities.Purchase) purchaseItem {
	it := purchaseItem{
		ID:                p.ID,
		PropertyID:        p.PropertyID,
		BuyerID:           p.BuyerID,
		TotalAmount:       p.TotalAmount.Amount,
		RemainingAmount:   p.RemainingAmount.Amount,
		Currency:          string(p.TotalAmount.Currency),
		Status:            string(p.Status),
		PaymentsApplied:   p.PaymentsApplied,
		ClosedWithBalance: p.ClosedWithBalance,
		Notes:             p.Notes,
		Version:           p.Version,
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
	if p.CompletedAt != nil {
		it.CompletedAt = formatTime(*p.CompletedAt)
	}
	return it
}

func fromPurchaseItem(it purchaseItem) entities.Purchase {
	currency := entities.Currency(it.Currency)
	p := entities.Purchase{
		ID:                it.ID,
		PropertyID:        it.PropertyID,
		BuyerID:           it.BuyerID,
		TotalAmount:       entities.Money{Amount: it.TotalAmount, Currency: currency},
		RemainingAmount:   entities.Money{Amount: it.RemainingAmount, Currency: currency},
		Status:            entities.PurchaseStatus(it.Status),
		PaymentsApplied:   it.PaymentsApplied,
		ClosedWithBalance: it.ClosedWithBalance,
		Notes:             it.Notes,
		Version:           it.Version,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.CompletedAt != "" {
		completedAt := parseTime(it.CompletedAt)
		p.CompletedAt = &completedAt
	}
	return p
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		PurchaseID:        p.PurchaseID,
		Amount:            p.Amount.Amount,
		Currency:          string(p.Amount.Currency),
		Method:            p.Method,
		Status:            string(p.Status),
		Sequence:          p.Sequence,
		ProviderPaymentID: p.ProviderPaymentID,
		Notes:             p.Notes,
		CreatedAt:         formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                it.ID,
		PurchaseID:        it.PurchaseID,
		Amount:            entities.Money{Amount: it.Amount, Currency: entities.Currency(it.Currency)},
		Method:            it.Method,
		Status:            entities.PaymentStatus(it.Status),
		Sequence:          it.Sequence,
		ProviderPaymentID: it.ProviderPaymentID,
		Notes:             it.Notes,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
