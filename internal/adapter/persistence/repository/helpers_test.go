package repository

import (
	"errors"
	"testing"
	"time"

	"repasse_imoveis/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalRoundTrip(t *testing.T) {
	d := decimal.RequireFromString("1537.50")
	assert.True(t, parseDec(decToString(d)).Equal(d))
	assert.True(t, parseDec("").IsZero())
	assert.True(t, parseDec("not-a-number").IsZero())
}

func TestTimeRoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 12, 14, 30, 0, 500, time.FixedZone("BRT", -3*3600))
	got := parseTime(timeToString(ts))
	assert.True(t, got.Equal(ts))
	assert.Equal(t, time.UTC, got.Location())

	assert.Equal(t, "", timeToString(time.Time{}))
	assert.Equal(t, "", optTimeToString(nil))
	assert.Nil(t, parseOptTime(""))
	require.NotNil(t, parseOptTime(timeToString(ts)))
}

func TestVersionedPut(t *testing.T) {
	t.Run("version zero requires a new item", func(t *testing.T) {
		put, err := versionedPut("invoices", invoiceItem{ID: "inv-1", Version: 1}, 0)
		require.NoError(t, err)
		assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(put.ConditionExpression))
		assert.Equal(t, "id", put.ExpressionAttributeNames["#id"])
		assert.Empty(t, put.ExpressionAttributeValues)
	})

	t.Run("later versions compare the stored version", func(t *testing.T) {
		put, err := versionedPut("invoices", invoiceItem{ID: "inv-1", Version: 4}, 3)
		require.NoError(t, err)
		assert.Equal(t, "#version = :expected", aws.ToString(put.ConditionExpression))
		assert.Equal(t, &types.AttributeValueMemberN{Value: "3"}, put.ExpressionAttributeValues[":expected"])
		assert.Equal(t, &types.AttributeValueMemberN{Value: "4"}, put.Item["version"])
	})
}

func TestConditionFailed(t *testing.T) {
	ccf := &types.ConditionalCheckFailedException{Message: aws.String("failed")}
	assert.ErrorIs(t, conditionFailed(ccf, true), interfaces.ErrAlreadyExists)
	assert.ErrorIs(t, conditionFailed(ccf, false), interfaces.ErrVersionConflict)

	cancelled := &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
		{Code: aws.String("None")},
		{Code: aws.String("ConditionalCheckFailed")},
	}}
	assert.ErrorIs(t, conditionFailed(cancelled, false), interfaces.ErrVersionConflict)

	assert.ErrorIs(t, conditionFailed(&types.TransactionConflictException{}, false), interfaces.ErrVersionConflict)

	throttled := &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
		{Code: aws.String("ThrottlingError")},
	}}
	assert.Same(t, throttled, conditionFailed(throttled, false))

	other := errors.New("boom")
	assert.Same(t, other, conditionFailed(other, false))
}

func TestMergeNames(t *testing.T) {
	a := map[string]string{"#a": "a"}
	assert.Equal(t, a, mergeNames(a, nil))
	assert.Equal(t, a, mergeNames(nil, a))
	assert.Equal(t, map[string]string{"#a": "a", "#b": "b"}, mergeNames(a, map[string]string{"#b": "b"}))
}
