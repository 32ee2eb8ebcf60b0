package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const DefaultSeedTableName = "ops_seed"

const (
	bucketLeads            = "leads"
	bucketQuotes           = "quotes"
	bucketOrders           = "orders"
	bucketProjects         = "projects"
	bucketTasks            = "tasks"
	bucketApprovals        = "approvals"
	bucketInvoices         = "invoices"
	bucketInventory        = "inventory"
	bucketPortalMilestones = "portal_milestones"
)

type seedItem struct {
	Bucket   string `dynamodbav:"bucket"`
	ID       string `dynamodbav:"id"`
	Position int    `dynamodbav:"position"`
	Payload  string `dynamodbav:"payload"`
}

// SeedDynamoAPI is the subset of the DynamoDB client the seed repository uses.
type SeedDynamoAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// SeedDynamoRepository reads the initial operations dataset from DynamoDB.
//
// Table requirements:
//   - PK: bucket (string), SK: id (string)
//   - payload holds the record as JSON; position keeps collection order.
//
// It is a seed source only: runtime mutations stay in memory.

type SeedDynamoRepository struct {
	ddb       SeedDynamoAPI
	tableName string
}

var _ interfaces.ISeedSource = (*SeedDynamoRepository)(nil)

func NewSeedDynamoRepository(ddb SeedDynamoAPI, tableName string) *SeedDynamoRepository {
	if tableName == "" {
		tableName = DefaultSeedTableName
	}
	return &SeedDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SeedDynamoRepository) Load(ctx context.Context) (entities.Dataset, error) {
	var items []seedItem
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return entities.Dataset{}, fmt.Errorf("scan %s: %w", r.tableName, err)
		}
		var page []seedItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return entities.Dataset{}, fmt.Errorf("unmarshal seed items: %w", err)
		}
		items = append(items, page...)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Bucket != items[j].Bucket {
			return items[i].Bucket < items[j].Bucket
		}
		return items[i].Position < items[j].Position
	})

	ds := emptyDataset()
	for _, it := range items {
		if err := decodeSeedItem(&ds, it); err != nil {
			return entities.Dataset{}, err
		}
	}
	return ds, nil
}

// Save writes every record of ds as a seed item, overwriting existing ones.
func (r *SeedDynamoRepository) Save(ctx context.Context, ds entities.Dataset) (int, error) {
	items, err := encodeDataset(ds)
	if err != nil {
		return 0, err
	}
	for i, it := range items {
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return i, err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		}); err != nil {
			return i, fmt.Errorf("put %s/%s: %w", it.Bucket, it.ID, err)
		}
	}
	return len(items), nil
}

func emptyDataset() entities.Dataset {
	return entities.Dataset{
		Leads:            []entities.Lead{},
		Quotes:           []entities.Quote{},
		Orders:           []entities.Order{},
		Projects:         []entities.Project{},
		Tasks:            []entities.Task{},
		Approvals:        []entities.Approval{},
		Invoices:         []entities.Invoice{},
		Inventory:        []entities.InventoryItem{},
		PortalMilestones: []entities.PortalMilestone{},
	}
}

func decodeSeedItem(ds *entities.Dataset, it seedItem) error {
	raw := []byte(it.Payload)
	var err error
	switch it.Bucket {
	case bucketLeads:
		ds.Leads, err = appendDecoded(ds.Leads, raw)
	case bucketQuotes:
		ds.Quotes, err = appendDecoded(ds.Quotes, raw)
	case bucketOrders:
		ds.Orders, err = appendDecoded(ds.Orders, raw)
	case bucketProjects:
		ds.Projects, err = appendDecoded(ds.Projects, raw)
	case bucketTasks:
		ds.Tasks, err = appendDecoded(ds.Tasks, raw)
	case bucketApprovals:
		ds.Approvals, err = appendDecoded(ds.Approvals, raw)
	case bucketInvoices:
		ds.Invoices, err = appendDecoded(ds.Invoices, raw)
	case bucketInventory:
		ds.Inventory, err = appendDecoded(ds.Inventory, raw)
	case bucketPortalMilestones:
		ds.PortalMilestones, err = appendDecoded(ds.PortalMilestones, raw)
	default:
		return fmt.Errorf("unknown seed bucket %q", it.Bucket)
	}
	if err != nil {
		return fmt.Errorf("decode %s/%s: %w", it.Bucket, it.ID, err)
	}
	return nil
}

func appendDecoded[T any](dst []T, raw []byte) ([]T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return dst, err
	}
	return append(dst, v), nil
}

func encodeDataset(ds entities.Dataset) ([]seedItem, error) {
	var items []seedItem
	add := func(bucket, id string, pos int, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s/%s: %w", bucket, id, err)
		}
		items = append(items, seedItem{Bucket: bucket, ID: id, Position: pos, Payload: string(b)})
		return nil
	}

	for i, v := range ds.Leads {
		if err := add(bucketLeads, v.ID, i, v); err != nil {
			return nil, err
		}
	}
	for i, v := range ds.Quotes {
		if err := add(bucketQuotes, v.ID, i, v); err != nil {
			return nil, err
		}
	}
	for i, v := range ds.Orders {
		if err := add(bucketOrders, v.ID, i, v); err != nil {
			return nil, err
		}
	}
	for i, v := range ds.Projects {
		if err := add(bucketProjects, v.ID, i, v); err != nil {
			return nil, err
		}
	}
	for i, v := range ds.Tasks {
		if err := add(bucketTasks, v.ID, i, v); err != nil {
			return nil, err
		}
	}
	for i, v := range ds.Approvals {
		if err := add(bucketApprovals, v.ID, i, v); err != nil {
			return nil, err
		}
	}
	for i, v := range ds.Invoices {
		if err := add(bucketInvoices, v.ID, i, v); err != nil {
			return nil, err
		}
	}
	for i, v := range ds.Inventory {
		if err := add(bucketInventory, v.ID, i, v); err != nil {
			return nil, err
		}
	}
	for i, v := range ds.PortalMilestones {
		if err := add(bucketPortalMilestones, v.ID, i, v); err != nil {
			return nil, err
		}
	}
	return items, nil
}
