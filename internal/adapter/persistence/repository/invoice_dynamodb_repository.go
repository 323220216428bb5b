package repository

import (
	"context"
	"sort"

	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type componentItem struct {
	ID            string `dynamodbav:"id"`
	Kind          string `dynamodbav:"kind"`
	Description   string `dynamodbav:"description"`
	OriginalValue string `dynamodbav:"original_value"`
	FinalValue    string `dynamodbav:"final_value"`
	Surchargeable bool   `dynamodbav:"surchargeable"`
	Interest      string `dynamodbav:"interest"`
	Penalty       string `dynamodbav:"penalty"`
	Correction    string `dynamodbav:"correction"`
	DaysLate      int    `dynamodbav:"days_late"`
	AdHoc         bool   `dynamodbav:"ad_hoc"`
}

type invoiceItem struct {
	ID             string          `dynamodbav:"id"`
	ContractID     string          `dynamodbav:"contract_id"`
	PropertyLabel  string          `dynamodbav:"property_label,omitempty"`
	TenantName     string          `dynamodbav:"tenant_name,omitempty"`
	OwnerIDs       []string        `dynamodbav:"owner_ids,omitempty"`
	Month          int             `dynamodbav:"month"`
	Year           int             `dynamodbav:"year"`
	DueDate        string          `dynamodbav:"due_date"`
	PaidAt         string          `dynamodbav:"paid_at,omitempty"`
	GeneratedAt    string          `dynamodbav:"generated_at"`
	Total          string          `dynamodbav:"total"`
	TotalSurcharge string          `dynamodbav:"total_surcharge"`
	DaysLate       int             `dynamodbav:"days_late"`
	Status         string          `dynamodbav:"status"`
	Notes          string          `dynamodbav:"notes,omitempty"`
	IndexOverride  string          `dynamodbav:"index_override,omitempty"`
	Components     []componentItem `dynamodbav:"components"`
	Version        int             `dynamodbav:"version"`
	UpdatedAt      string          `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)
//
// Components are embedded in the invoice item, so an invoice is always read and written
// as a whole and the version attribute covers all of it.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client, tableName string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{ddb: ddb, tableName: tableName}
}

// Create stores a new invoice at version 1. An invoice with the same id yields
// ErrAlreadyExists.
func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv.Version = 0
	put, err := r.putInput(inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if _, err := r.ddb.PutItem(ctx, put); err != nil {
		return entities.Invoice{}, conditionFailed(err, true)
	}
	inv.Version = 1
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// List scans the whole table. Filtering and paging happen in the billing engine.
func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	var out []entities.Invoice
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalInvoices(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// ListByContractID returns the contract's invoices ordered by period.
func (r *InvoiceDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.Invoice, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractIDIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": strAttr(contractID),
		},
	})
	out := make([]entities.Invoice, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalInvoices(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Period.Before(out[j].Period) })
	return out, nil
}

// Update overwrites the invoice if the stored version still equals inv.Version.
func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	put, err := r.putInput(inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if _, err := r.ddb.PutItem(ctx, put); err != nil {
		return entities.Invoice{}, conditionFailed(err, false)
	}
	inv.Version++
	return inv, nil
}

// putInput builds a conditional put of inv stored at inv.Version+1.
func (r *InvoiceDynamoRepository) putInput(inv entities.Invoice) (*dynamodb.PutItemInput, error) {
	put, err := invoicePut(r.tableName, inv)
	if err != nil {
		return nil, err
	}
	return &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	}, nil
}

func invoicePut(table string, inv entities.Invoice) (*types.Put, error) {
	it := toInvoiceItem(inv)
	it.Version = inv.Version + 1
	return versionedPut(table, it, inv.Version)
}

func unmarshalInvoices(raw []map[string]types.AttributeValue) ([]entities.Invoice, error) {
	out := make([]entities.Invoice, 0, len(raw))
	for _, item := range raw {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromInvoiceItem(it))
	}
	return out, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:             inv.ID,
		ContractID:     inv.ContractID,
		PropertyLabel:  inv.PropertyLabel,
		TenantName:     inv.TenantName,
		OwnerIDs:       inv.OwnerIDs,
		Month:          inv.Period.Month,
		Year:           inv.Period.Year,
		DueDate:        timeToString(inv.DueDate),
		PaidAt:         optTimeToString(inv.PaidAt),
		GeneratedAt:    timeToString(inv.GeneratedAt),
		Total:          decToString(inv.Total),
		TotalSurcharge: decToString(inv.TotalSurcharge),
		DaysLate:       inv.DaysLate,
		Status:         string(inv.Status),
		Notes:          inv.Notes,
		IndexOverride:  string(inv.IndexOverride),
		Components:     make([]componentItem, len(inv.Components)),
		Version:        inv.Version,
		UpdatedAt:      timeToString(inv.UpdatedAt),
	}
	for i, c := range inv.Components {
		it.Components[i] = componentItem{
			ID:            c.ID,
			Kind:          string(c.Kind),
			Description:   c.Description,
			OriginalValue: decToString(c.OriginalValue),
			FinalValue:    decToString(c.FinalValue),
			Surchargeable: c.Surchargeable,
			Interest:      decToString(c.Interest),
			Penalty:       decToString(c.Penalty),
			Correction:    decToString(c.Correction),
			DaysLate:      c.DaysLate,
			AdHoc:         c.AdHoc,
		}
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	inv := entities.Invoice{
		ID:             it.ID,
		ContractID:     it.ContractID,
		PropertyLabel:  it.PropertyLabel,
		TenantName:     it.TenantName,
		OwnerIDs:       it.OwnerIDs,
		Period:         entities.Period{Month: it.Month, Year: it.Year},
		DueDate:        parseTime(it.DueDate),
		PaidAt:         parseOptTime(it.PaidAt),
		GeneratedAt:    parseTime(it.GeneratedAt),
		Total:          parseDec(it.Total),
		TotalSurcharge: parseDec(it.TotalSurcharge),
		DaysLate:       it.DaysLate,
		Status:         entities.InvoiceStatus(it.Status),
		Notes:          it.Notes,
		IndexOverride:  entities.IndexName(it.IndexOverride),
		Components:     make([]entities.InvoiceComponent, len(it.Components)),
		Version:        it.Version,
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
	for i, c := range it.Components {
		inv.Components[i] = entities.InvoiceComponent{
			ID:            c.ID,
			InvoiceID:     it.ID,
			Kind:          entities.ChargeKind(c.Kind),
			Description:   c.Description,
			OriginalValue: parseDec(c.OriginalValue),
			FinalValue:    parseDec(c.FinalValue),
			Surchargeable: c.Surchargeable,
			Interest:      parseDec(c.Interest),
			Penalty:       parseDec(c.Penalty),
			Correction:    parseDec(c.Correction),
			DaysLate:      c.DaysLate,
			AdHoc:         c.AdHoc,
		}
	}
	return inv
}
