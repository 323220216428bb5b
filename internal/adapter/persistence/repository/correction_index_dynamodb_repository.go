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

type correctionIndexItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Month      int    `dynamodbav:"month"`
	Year       int    `dynamodbav:"year"`
	Percentage string `dynamodbav:"percentage"`
	Source     string `dynamodbav:"source,omitempty"`
}

// CorrectionIndexDynamoRepository stores monthly index publications.
//
// Table requirements:
//   - PK: id (string), "<name>#<YYYY-MM>"
//   - GSI: name-index (PK: name)

type CorrectionIndexDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICorrectionIndexRepository = (*CorrectionIndexDynamoRepository)(nil)

func NewCorrectionIndexDynamoRepository(ddb *dynamodb.Client, tableName string) *CorrectionIndexDynamoRepository {
	return &CorrectionIndexDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CorrectionIndexDynamoRepository) Get(ctx context.Context, name entities.IndexName, period entities.Period) (entities.CorrectionIndex, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(entities.CorrectionIndexKey(name, period)),
	})
	if err != nil {
		return entities.CorrectionIndex{}, err
	}
	if len(out.Item) == 0 {
		return entities.CorrectionIndex{}, nil
	}

	var it correctionIndexItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CorrectionIndex{}, err
	}
	return fromCorrectionIndexItem(it), nil
}

// List returns the publications of one index, or of every index when name is empty,
// ordered by index then period.
func (r *CorrectionIndexDynamoRepository) List(ctx context.Context, name entities.IndexName) ([]entities.CorrectionIndex, error) {
	var (
		raw []map[string]types.AttributeValue
		err error
	)
	if name == "" {
		raw, err = r.scanAll(ctx)
	} else {
		raw, err = r.queryByName(ctx, name)
	}
	if err != nil {
		return nil, err
	}

	out := make([]entities.CorrectionIndex, 0, len(raw))
	for _, item := range raw {
		var it correctionIndexItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromCorrectionIndexItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Period.Before(out[j].Period)
	})
	return out, nil
}

func (r *CorrectionIndexDynamoRepository) scanAll(ctx context.Context) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	var items []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func (r *CorrectionIndexDynamoRepository) queryByName(ctx context.Context, name entities.IndexName) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(nameIndex),
		KeyConditionExpression:   aws.String("#name = :name"),
		ExpressionAttributeNames: map[string]string{"#name": "name"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": strAttr(string(name)),
		},
	})
	var items []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// Put upserts the publication for (name, period).
func (r *CorrectionIndexDynamoRepository) Put(ctx context.Context, idx entities.CorrectionIndex) (entities.CorrectionIndex, error) {
	av, err := attributevalue.MarshalMap(correctionIndexItem{
		ID:         entities.CorrectionIndexKey(idx.Name, idx.Period),
		Name:       string(idx.Name),
		Month:      idx.Period.Month,
		Year:       idx.Period.Year,
		Percentage: decToString(idx.Percentage),
		Source:     idx.Source,
	})
	if err != nil {
		return entities.CorrectionIndex{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.CorrectionIndex{}, err
	}
	return idx, nil
}

func fromCorrectionIndexItem(it correctionIndexItem) entities.CorrectionIndex {
	return entities.CorrectionIndex{
		Name:       entities.IndexName(it.Name),
		Period:     entities.Period{Month: it.Month, Year: it.Year},
		Percentage: parseDec(it.Percentage),
		Source:     it.Source,
	}
}
