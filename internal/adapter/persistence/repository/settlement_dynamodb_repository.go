package repository

import (
	"context"
	"sort"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"golang.org/x/sync/errgroup"
)

type retainedValueItem struct {
	Kind        string `dynamodbav:"kind"`
	Description string `dynamodbav:"description"`
	Value       string `dynamodbav:"value"`
	Percent     string `dynamodbav:"percent,omitempty"`
}

type settlementItem struct {
	ID             string              `dynamodbav:"id"`
	InvoiceID      string              `dynamodbav:"invoice_id"`
	ContractID     string              `dynamodbav:"contract_id"`
	Month          int                 `dynamodbav:"month"`
	Year           int                 `dynamodbav:"year"`
	InvoiceTotal   string              `dynamodbav:"invoice_total"`
	TotalSurcharge string              `dynamodbav:"total_surcharge"`
	TotalRetained  string              `dynamodbav:"total_retained"`
	TotalPayout    string              `dynamodbav:"total_payout"`
	Status         string              `dynamodbav:"status"`
	RetainedValues []retainedValueItem `dynamodbav:"retained_values"`
	OwnersSnapshot []ownerItem         `dynamodbav:"owners_snapshot"`
	CreatedAt      string              `dynamodbav:"created_at"`
	TransferredAt  string              `dynamodbav:"transferred_at,omitempty"`
	Version        int                 `dynamodbav:"version"`
}

type payoutItem struct {
	SettlementID     string `dynamodbav:"settlement_id"`
	OwnerID          string `dynamodbav:"owner_id"`
	OwnerName        string `dynamodbav:"owner_name"`
	OwnershipPercent string `dynamodbav:"ownership_percent"`
	Value            string `dynamodbav:"value"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
	ReceiptReference string `dynamodbav:"receipt_reference,omitempty"`
	Status           string `dynamodbav:"status"`
}

// SettlementDynamoRepository persists SettlementRecord entities and their payouts.
//
// Table requirements:
//   - settlements: PK id, GSIs invoice_id-index and contract_id-index
//   - payouts: PK settlement_id, SK owner_id
//
// Writes that span the invoice, the settlement and its payouts go through
// TransactWriteItems, so a failed condition leaves every item untouched.

type SettlementDynamoRepository struct {
	ddb              *dynamodb.Client
	settlementsTable string
	payoutsTable     string
	invoicesTable    string
}

var _ interfaces.ISettlementRepository = (*SettlementDynamoRepository)(nil)

func NewSettlementDynamoRepository(ddb *dynamodb.Client, settlementsTable, payoutsTable, invoicesTable string) *SettlementDynamoRepository {
	return &SettlementDynamoRepository{
		ddb:              ddb,
		settlementsTable: settlementsTable,
		payoutsTable:     payoutsTable,
		invoicesTable:    invoicesTable,
	}
}

func (r *SettlementDynamoRepository) GetByID(ctx context.Context, id string) (entities.SettlementRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.settlementsTable),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SettlementRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.SettlementRecord{}, nil
	}

	var it settlementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SettlementRecord{}, err
	}
	rec := fromSettlementItem(it)
	if rec.Payouts, err = r.payouts(ctx, rec.ID); err != nil {
		return entities.SettlementRecord{}, err
	}
	return rec, nil
}

// GetByInvoiceID resolves by primary key: settlement ids are derived from the invoice
// id, which keeps the read strongly consistent.
func (r *SettlementDynamoRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (entities.SettlementRecord, error) {
	return r.GetByID(ctx, billing.SettlementID(invoiceID))
}

// ListByContractID returns the contract's settlement history, oldest period first.
func (r *SettlementDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.SettlementRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.settlementsTable),
		IndexName:              aws.String(contractIDIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": strAttr(contractID),
		},
	})
	records := make([]entities.SettlementRecord, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it settlementItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromSettlementItem(it))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i := range records {
		i := i
		g.Go(func() error {
			payouts, err := r.payouts(gctx, records[i].ID)
			records[i].Payouts = payouts
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Period.Before(records[j].Period) })
	return records, nil
}

func (r *SettlementDynamoRepository) RecordPayment(ctx context.Context, inv entities.Invoice, rec entities.SettlementRecord, stale []entities.OwnerPayout) (entities.Invoice, entities.SettlementRecord, error) {
	invPut, err := invoicePut(r.invoicesTable, inv)
	if err != nil {
		return entities.Invoice{}, entities.SettlementRecord{}, err
	}
	items := []types.TransactWriteItem{{Put: invPut}}
	rest, err := r.settlementWrites(rec, stale)
	if err != nil {
		return entities.Invoice{}, entities.SettlementRecord{}, err
	}
	items = append(items, rest...)

	if err := r.transact(ctx, items); err != nil {
		return entities.Invoice{}, entities.SettlementRecord{}, err
	}
	inv.Version++
	rec.Version++
	return inv, rec, nil
}

func (r *SettlementDynamoRepository) Replace(ctx context.Context, inv entities.Invoice, rec entities.SettlementRecord, stale []entities.OwnerPayout) (entities.SettlementRecord, error) {
	guard := types.TransactWriteItem{ConditionCheck: &types.ConditionCheck{
		TableName:           aws.String(r.invoicesTable),
		Key:                 idKey(inv.ID),
		ConditionExpression: aws.String("#status = :paga AND #version = :version"),
		ExpressionAttributeNames: map[string]string{
			"#status":  "status",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paga":    strAttr(string(entities.InvoiceStatusPaga)),
			":version": numAttr(inv.Version),
		},
	}}
	rest, err := r.settlementWrites(rec, stale)
	if err != nil {
		return entities.SettlementRecord{}, err
	}

	if err := r.transact(ctx, append([]types.TransactWriteItem{guard}, rest...)); err != nil {
		return entities.SettlementRecord{}, err
	}
	rec.Version++
	return rec, nil
}

func (r *SettlementDynamoRepository) Book(ctx context.Context, inv entities.Invoice, rec entities.SettlementRecord) (entities.Invoice, entities.SettlementRecord, error) {
	invPut, err := invoicePut(r.invoicesTable, inv)
	if err != nil {
		return entities.Invoice{}, entities.SettlementRecord{}, err
	}
	recPut, err := r.settlementPut(rec)
	if err != nil {
		return entities.Invoice{}, entities.SettlementRecord{}, err
	}

	if err := r.transact(ctx, []types.TransactWriteItem{{Put: invPut}, {Put: recPut}}); err != nil {
		return entities.Invoice{}, entities.SettlementRecord{}, err
	}
	inv.Version++
	rec.Version++
	return inv, rec, nil
}

// ConfirmPayout touches only the owner's payout row, so confirmations of different
// owners never conflict with each other.
func (r *SettlementDynamoRepository) ConfirmPayout(ctx context.Context, p entities.OwnerPayout) error {
	return r.update(ctx, r.payoutsTable, payoutKey(p.SettlementID, p.OwnerID), "settlement_id",
		"#status = :pending",
		"SET #status = :done, #paid_at = :paid_at, #receipt = :receipt",
		map[string]string{
			"#status":  "status",
			"#paid_at": "paid_at",
			"#receipt": "receipt_reference",
		},
		map[string]types.AttributeValue{
			":pending": strAttr(string(entities.PayoutStatusPendente)),
			":done":    strAttr(string(entities.PayoutStatusRealizado)),
			":paid_at": strAttr(optTimeToString(p.PaidAt)),
			":receipt": strAttr(p.ReceiptReference),
		},
	)
}

func (r *SettlementDynamoRepository) MarkTransferred(ctx context.Context, rec entities.SettlementRecord) (entities.SettlementRecord, error) {
	err := r.update(ctx, r.settlementsTable, idKey(rec.ID), "id",
		"#status = :processed AND #version = :version",
		"SET #status = :transferred, #transferred_at = :transferred_at, #version = :next",
		map[string]string{
			"#status":         "status",
			"#transferred_at": "transferred_at",
			"#version":        "version",
		},
		map[string]types.AttributeValue{
			":processed":      strAttr(string(entities.SettlementStatusProcessada)),
			":transferred":    strAttr(string(entities.SettlementStatusRepassada)),
			":transferred_at": strAttr(optTimeToString(rec.TransferredAt)),
			":version":        numAttr(rec.Version),
			":next":           numAttr(rec.Version + 1),
		},
	)
	if err != nil {
		return entities.SettlementRecord{}, err
	}
	rec.Status = entities.SettlementStatusRepassada
	rec.Version++
	return rec, nil
}

// Put stores a settlement and its payouts unconditionally. It is meant for seeding.
func (r *SettlementDynamoRepository) Put(ctx context.Context, rec entities.SettlementRecord) error {
	it := toSettlementItem(rec)
	items := make([]types.TransactWriteItem, 0, len(rec.Payouts)+1)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	items = append(items, types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.settlementsTable), Item: av}})
	for _, p := range rec.Payouts {
		pav, err := attributevalue.MarshalMap(toPayoutItem(p))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.payoutsTable), Item: pav}})
	}
	return r.transact(ctx, items)
}

// settlementWrites puts the settlement and its payouts and deletes stale payouts of
// owners that no longer take part. Owners present in both are simply overwritten.
func (r *SettlementDynamoRepository) settlementWrites(rec entities.SettlementRecord, stale []entities.OwnerPayout) ([]types.TransactWriteItem, error) {
	recPut, err := r.settlementPut(rec)
	if err != nil {
		return nil, err
	}
	items := []types.TransactWriteItem{{Put: recPut}}

	current := make(map[string]bool, len(rec.Payouts))
	for _, p := range rec.Payouts {
		current[p.OwnerID] = true
		av, err := attributevalue.MarshalMap(toPayoutItem(p))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.payoutsTable), Item: av}})
	}
	for _, p := range stale {
		if current[p.OwnerID] {
			continue
		}
		items = append(items, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(r.payoutsTable),
			Key:       payoutKey(rec.ID, p.OwnerID),
		}})
	}
	return items, nil
}

func (r *SettlementDynamoRepository) settlementPut(rec entities.SettlementRecord) (*types.Put, error) {
	it := toSettlementItem(rec)
	it.Version = rec.Version + 1
	return versionedPut(r.settlementsTable, it, rec.Version)
}

func (r *SettlementDynamoRepository) transact(ctx context.Context, items []types.TransactWriteItem) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return conditionFailed(err, false)
	}
	return nil
}

func (r *SettlementDynamoRepository) update(
	ctx context.Context,
	table string,
	key map[string]types.AttributeValue,
	hashKey string,
	condition, updateExpr string,
	names map[string]string,
	values map[string]types.AttributeValue,
) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       key,
		ConditionExpression:       aws.String("attribute_exists(#pk) AND " + condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#pk": hashKey}),
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return conditionFailed(err, false)
	}
	return nil
}

func (r *SettlementDynamoRepository) payouts(ctx context.Context, settlementID string) ([]entities.OwnerPayout, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.payoutsTable),
		KeyConditionExpression: aws.String("settlement_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": strAttr(settlementID),
		},
		ConsistentRead: aws.Bool(true),
	})
	var out []entities.OwnerPayout
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it payoutItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromPayoutItem(it))
		}
	}
	return out, nil
}

func payoutKey(settlementID, ownerID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"settlement_id": strAttr(settlementID),
		"owner_id":      strAttr(ownerID),
	}
}

func toSettlementItem(rec entities.SettlementRecord) settlementItem {
	it := settlementItem{
		ID:             rec.ID,
		InvoiceID:      rec.InvoiceID,
		ContractID:     rec.ContractID,
		Month:          rec.Period.Month,
		Year:           rec.Period.Year,
		InvoiceTotal:   decToString(rec.InvoiceTotal),
		TotalSurcharge: decToString(rec.TotalSurcharge),
		TotalRetained:  decToString(rec.TotalRetained),
		TotalPayout:    decToString(rec.TotalPayout),
		Status:         string(rec.Status),
		RetainedValues: make([]retainedValueItem, len(rec.RetainedValues)),
		OwnersSnapshot: make([]ownerItem, len(rec.OwnersSnapshot)),
		CreatedAt:      timeToString(rec.CreatedAt),
		TransferredAt:  optTimeToString(rec.TransferredAt),
		Version:        rec.Version,
	}
	for i, v := range rec.RetainedValues {
		rv := retainedValueItem{Kind: string(v.Kind), Description: v.Description, Value: decToString(v.Value)}
		if v.Percent != nil {
			rv.Percent = decToString(*v.Percent)
		}
		it.RetainedValues[i] = rv
	}
	for i, o := range rec.OwnersSnapshot {
		it.OwnersSnapshot[i] = toOwnerItem(o)
	}
	return it
}

func fromSettlementItem(it settlementItem) entities.SettlementRecord {
	rec := entities.SettlementRecord{
		ID:             it.ID,
		InvoiceID:      it.InvoiceID,
		ContractID:     it.ContractID,
		Period:         entities.Period{Month: it.Month, Year: it.Year},
		InvoiceTotal:   parseDec(it.InvoiceTotal),
		TotalSurcharge: parseDec(it.TotalSurcharge),
		TotalRetained:  parseDec(it.TotalRetained),
		TotalPayout:    parseDec(it.TotalPayout),
		Status:         entities.SettlementStatus(it.Status),
		RetainedValues: make([]entities.RetainedValue, len(it.RetainedValues)),
		OwnersSnapshot: make([]entities.Owner, len(it.OwnersSnapshot)),
		CreatedAt:      parseTime(it.CreatedAt),
		TransferredAt:  parseOptTime(it.TransferredAt),
		Version:        it.Version,
	}
	for i, v := range it.RetainedValues {
		rv := entities.RetainedValue{Kind: entities.RetentionKind(v.Kind), Description: v.Description, Value: parseDec(v.Value)}
		if v.Percent != "" {
			pct := parseDec(v.Percent)
			rv.Percent = &pct
		}
		rec.RetainedValues[i] = rv
	}
	for i, o := range it.OwnersSnapshot {
		rec.OwnersSnapshot[i] = fromOwnerItem(o)
	}
	return rec
}

func toPayoutItem(p entities.OwnerPayout) payoutItem {
	return payoutItem{
		SettlementID:     p.SettlementID,
		OwnerID:          p.OwnerID,
		OwnerName:        p.OwnerName,
		OwnershipPercent: decToString(p.OwnershipPercent),
		Value:            decToString(p.Value),
		PaidAt:           optTimeToString(p.PaidAt),
		ReceiptReference: p.ReceiptReference,
		Status:           string(p.Status),
	}
}

func fromPayoutItem(it payoutItem) entities.OwnerPayout {
	return entities.OwnerPayout{
		SettlementID:     it.SettlementID,
		OwnerID:          it.OwnerID,
		OwnerName:        it.OwnerName,
		OwnershipPercent: parseDec(it.OwnershipPercent),
		Value:            parseDec(it.Value),
		PaidAt:           parseOptTime(it.PaidAt),
		ReceiptReference: it.ReceiptReference,
		Status:           entities.PayoutStatus(it.Status),
	}
}
