package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	appconfig "repasse_imoveis/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

type tableLayout struct {
	name       string
	hashKey    string
	rangeKey   string
	gsiHashKey []string
}

func tableLayouts(t appconfig.TableNames) []tableLayout {
	return []tableLayout{
		{name: t.Invoices, hashKey: "id", gsiHashKey: []string{"contract_id"}},
		{name: t.Settlements, hashKey: "id", gsiHashKey: []string{"invoice_id", "contract_id"}},
		{name: t.Payouts, hashKey: "settlement_id", rangeKey: "owner_id"},
		{name: t.Contracts, hashKey: "id"},
		{name: t.Owners, hashKey: "id", gsiHashKey: []string{"contract_id"}},
		{name: t.RetentionConfigs, hashKey: "id"},
		{name: t.CorrectionIndexes, hashKey: "id", gsiHashKey: []string{"name"}},
	}
}

// IndexName is the GSI name for a hash key attribute, e.g. contract_id-index.
func IndexName(attr string) string {
	return attr + "-index"
}

// EnsureTables creates every missing table with on-demand billing. It is meant for
// local development and tests; production tables are provisioned outside the service.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, names appconfig.TableNames, log *zap.Logger) error {
	waiter := dynamodb.NewTableExistsWaiter(ddb)
	for _, tbl := range tableLayouts(names) {
		created, err := createTable(ctx, ddb, tbl)
		if err != nil {
			return fmt.Errorf("create table %s: %w", tbl.name, err)
		}
		if !created {
			continue
		}
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(tbl.name)}, time.Minute); err != nil {
			return fmt.Errorf("wait table %s: %w", tbl.name, err)
		}
		log.Info("[database][dynamodb] table created", zap.String("table", tbl.name))
	}
	return nil
}

func createTable(ctx context.Context, ddb *dynamodb.Client, tbl tableLayout) (bool, error) {
	attrs := map[string]struct{}{tbl.hashKey: {}}
	keys := []types.KeySchemaElement{{AttributeName: aws.String(tbl.hashKey), KeyType: types.KeyTypeHash}}
	if tbl.rangeKey != "" {
		attrs[tbl.rangeKey] = struct{}{}
		keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(tbl.rangeKey), KeyType: types.KeyTypeRange})
	}

	var gsis []types.GlobalSecondaryIndex
	for _, attr := range tbl.gsiHashKey {
		attrs[attr] = struct{}{}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(IndexName(attr)),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	defs := make([]types.AttributeDefinition, 0, len(attrs))
	for attr := range attrs {
		defs = append(defs, types.AttributeDefinition{AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS})
	}

	_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:              aws.String(tbl.name),
		AttributeDefinitions:   defs,
		KeySchema:              keys,
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
