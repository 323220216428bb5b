package repository

import (
	"context"

	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type retentionConfigItem struct {
	ID           string `dynamodbav:"id"`
	AdminPercent string `dynamodbav:"admin_percent"`
	BoletoFee    string `dynamodbav:"boleto_fee"`
	TransferFee  string `dynamodbav:"transfer_fee"`
	Active       bool   `dynamodbav:"active"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// RetentionConfigDynamoRepository stores the default retention settings and the
// per-contract overrides.
//
// Table requirements:
//   - PK: id (string), "default" or a contract id

type RetentionConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRetentionConfigRepository = (*RetentionConfigDynamoRepository)(nil)

func NewRetentionConfigDynamoRepository(ddb *dynamodb.Client, tableName string) *RetentionConfigDynamoRepository {
	return &RetentionConfigDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RetentionConfigDynamoRepository) GetByID(ctx context.Context, id string) (entities.RetentionConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.RetentionConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.RetentionConfig{}, nil
	}

	var it retentionConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RetentionConfig{}, err
	}
	return entities.RetentionConfig{
		ID:           it.ID,
		AdminPercent: parseDec(it.AdminPercent),
		BoletoFee:    parseDec(it.BoletoFee),
		TransferFee:  parseDec(it.TransferFee),
		Active:       it.Active,
		UpdatedAt:    parseTime(it.UpdatedAt),
	}, nil
}

// Put replaces the configuration. Settlements already computed keep the values they
// were computed with.
func (r *RetentionConfigDynamoRepository) Put(ctx context.Context, cfg entities.RetentionConfig) (entities.RetentionConfig, error) {
	av, err := attributevalue.MarshalMap(retentionConfigItem{
		ID:           cfg.ID,
		AdminPercent: decToString(cfg.AdminPercent),
		BoletoFee:    decToString(cfg.BoletoFee),
		TransferFee:  decToString(cfg.TransferFee),
		Active:       cfg.Active,
		UpdatedAt:    timeToString(cfg.UpdatedAt),
	})
	if err != nil {
		return entities.RetentionConfig{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.RetentionConfig{}, err
	}
	return cfg, nil
}
