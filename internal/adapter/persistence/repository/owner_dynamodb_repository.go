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

type ownerItem struct {
	ID               string `dynamodbav:"id"`
	ContractID       string `dynamodbav:"contract_id"`
	Name             string `dynamodbav:"name"`
	TaxID            string `dynamodbav:"tax_id"`
	Email            string `dynamodbav:"email,omitempty"`
	Phone            string `dynamodbav:"phone,omitempty"`
	OwnershipPercent string `dynamodbav:"ownership_percent"`
	PixKey           string `dynamodbav:"pix_key,omitempty"`
	BankAccount      string `dynamodbav:"bank_account,omitempty"`
	Active           bool   `dynamodbav:"active"`
}

// OwnerDynamoRepository reads the owners linked to a contract.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)

type OwnerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOwnerRepository = (*OwnerDynamoRepository)(nil)

func NewOwnerDynamoRepository(ddb *dynamodb.Client, tableName string) *OwnerDynamoRepository {
	return &OwnerDynamoRepository{ddb: ddb, tableName: tableName}
}

// ListByContractID returns active and inactive owners sorted by id; the engine
// filters on Active.
func (r *OwnerDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.Owner, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractIDIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": strAttr(contractID),
		},
	})
	owners := make([]entities.Owner, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it ownerItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			owners = append(owners, fromOwnerItem(it))
		}
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i].ID < owners[j].ID })
	return owners, nil
}

// Put stores an owner unconditionally. Used to seed local environments and tests.
func (r *OwnerDynamoRepository) Put(ctx context.Context, o entities.Owner) error {
	av, err := attributevalue.MarshalMap(toOwnerItem(o))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toOwnerItem(o entities.Owner) ownerItem {
	return ownerItem{
		ID:               o.ID,
		ContractID:       o.ContractID,
		Name:             o.Name,
		TaxID:            o.TaxID,
		Email:            o.Email,
		Phone:            o.Phone,
		OwnershipPercent: decToString(o.OwnershipPercent),
		PixKey:           o.PixKey,
		BankAccount:      o.BankAccount,
		Active:           o.Active,
	}
}

func fromOwnerItem(it ownerItem) entities.Owner {
	return entities.Owner{
		ID:               it.ID,
		ContractID:       it.ContractID,
		Name:             it.Name,
		TaxID:            it.TaxID,
		Email:            it.Email,
		Phone:            it.Phone,
		OwnershipPercent: parseDec(it.OwnershipPercent),
		PixKey:           it.PixKey,
		BankAccount:      it.BankAccount,
		Active:           it.Active,
	}
}
