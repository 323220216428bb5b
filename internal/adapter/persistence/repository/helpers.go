package repository

import (
	"errors"
	"strconv"
	"time"

	"repasse_imoveis/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	contractIDIndex = "contract_id-index"
	nameIndex       = "name-index"
)

// Money and percentages are stored as decimal strings so no precision is lost on the
// way through DynamoDB numbers.
func decToString(d decimal.Decimal) string {
	return d.String()
}

func parseDec(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func optTimeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToString(*t)
}

func parseOptTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func strAttr(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func numAttr(v int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(v)}
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": strAttr(id)}
}

// versionCondition guards a put against the version read by the caller. Version zero
// means the item must not exist yet.
func versionCondition(expected int) (*string, map[string]string, map[string]types.AttributeValue) {
	if expected == 0 {
		return aws.String("attribute_not_exists(#id)"), map[string]string{"#id": "id"}, nil
	}
	return aws.String("#version = :expected"),
		map[string]string{"#version": "version"},
		map[string]types.AttributeValue{":expected": numAttr(expected)}
}

// versionedPut builds a put of item conditional on the stored version being expected.
func versionedPut(table string, item any, expected int) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, err
	}
	cond, names, values := versionCondition(expected)
	return &types.Put{
		TableName:                 aws.String(table),
		Item:                      av,
		ConditionExpression:       cond,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}, nil
}

// conditionFailed maps a failed condition to the port's conflict sentinel. Creates
// report ErrAlreadyExists; everything else ErrVersionConflict.
func conditionFailed(err error, onCreate bool) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		if onCreate {
			return interfaces.ErrAlreadyExists
		}
		return interfaces.ErrVersionConflict
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, r := range tce.CancellationReasons {
			switch aws.ToString(r.Code) {
			case "ConditionalCheckFailed", "TransactionConflict":
				return interfaces.ErrVersionConflict
			}
		}
	}
	var tcf *types.TransactionConflictException
	if errors.As(err, &tcf) {
		return interfaces.ErrVersionConflict
	}
	return err
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
