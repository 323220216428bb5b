package database

import (
	"testing"

	appconfig "repasse_imoveis/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableLayouts(t *testing.T) {
	names := appconfig.TableNames{
		Invoices:          "boletos",
		Settlements:       "prestacoes",
		Payouts:           "repasses",
		Contracts:         "contratos",
		Owners:            "proprietarios",
		RetentionConfigs:  "retencoes",
		CorrectionIndexes: "indices",
	}

	layouts := tableLayouts(names)
	require.Len(t, layouts, 7)

	byName := map[string]tableLayout{}
	for _, l := range layouts {
		byName[l.name] = l
	}

	payouts := byName["repasses"]
	assert.Equal(t, "settlement_id", payouts.hashKey)
	assert.Equal(t, "owner_id", payouts.rangeKey)

	assert.ElementsMatch(t, []string{"invoice_id", "contract_id"}, byName["prestacoes"].gsiHashKey)
	assert.Equal(t, []string{"contract_id"}, byName["proprietarios"].gsiHashKey)
	assert.Equal(t, []string{"name"}, byName["indices"].gsiHashKey)
	assert.Empty(t, byName["contratos"].rangeKey)
}

func TestIndexName(t *testing.T) {
	assert.Equal(t, "contract_id-index", IndexName("contract_id"))
}
