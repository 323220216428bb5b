package repository

import (
	"context"

	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type chargeItem struct {
	Kind          string `dynamodbav:"kind"`
	Description   string `dynamodbav:"description"`
	Value         string `dynamodbav:"value"`
	Surchargeable bool   `dynamodbav:"surchargeable"`
}

type contractItem struct {
	ID              string       `dynamodbav:"id"`
	PropertyID      string       `dynamodbav:"property_id"`
	PropertyLabel   string       `dynamodbav:"property_label,omitempty"`
	TenantName      string       `dynamodbav:"tenant_name,omitempty"`
	StartDate       string       `dynamodbav:"start_date"`
	EndDate         string       `dynamodbav:"end_date,omitempty"`
	DueDay          int          `dynamodbav:"due_day"`
	CorrectionIndex string       `dynamodbav:"correction_index,omitempty"`
	MonthlyCharges  []chargeItem `dynamodbav:"monthly_charges"`
	Active          bool         `dynamodbav:"active"`
}

// ContractDynamoRepository reads contracts registered by the CRUD application.
//
// Table requirements:
//   - PK: id (string)

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client, tableName string) *ContractDynamoRepository {
	return &ContractDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

// Put stores a contract unconditionally. Used to seed local environments and tests.
func (r *ContractDynamoRepository) Put(ctx context.Context, c entities.Contract) error {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toContractItem(c entities.Contract) contractItem {
	it := contractItem{
		ID:              c.ID,
		PropertyID:      c.PropertyID,
		PropertyLabel:   c.PropertyLabel,
		TenantName:      c.TenantName,
		StartDate:       timeToString(c.StartDate),
		EndDate:         optTimeToString(c.EndDate),
		DueDay:          c.DueDay,
		CorrectionIndex: string(c.CorrectionIndex),
		MonthlyCharges:  make([]chargeItem, len(c.MonthlyCharges)),
		Active:          c.Active,
	}
	for i, ch := range c.MonthlyCharges {
		it.MonthlyCharges[i] = chargeItem{
			Kind:          string(ch.Kind),
			Description:   ch.Description,
			Value:         decToString(ch.Value),
			Surchargeable: ch.Surchargeable,
		}
	}
	return it
}

func fromContractItem(it contractItem) entities.Contract {
	c := entities.Contract{
		ID:              it.ID,
		PropertyID:      it.PropertyID,
		PropertyLabel:   it.PropertyLabel,
		TenantName:      it.TenantName,
		StartDate:       parseTime(it.StartDate),
		EndDate:         parseOptTime(it.EndDate),
		DueDay:          it.DueDay,
		CorrectionIndex: entities.IndexName(it.CorrectionIndex),
		MonthlyCharges:  make([]entities.RecurringCharge, len(it.MonthlyCharges)),
		Active:          it.Active,
	}
	for i, ch := range it.MonthlyCharges {
		c.MonthlyCharges[i] = entities.RecurringCharge{
			Kind:          entities.ChargeKind(ch.Kind),
			Description:   ch.Description,
			Value:         parseDec(ch.Value),
			Surchargeable: ch.Surchargeable,
		}
	}
	return c
}
