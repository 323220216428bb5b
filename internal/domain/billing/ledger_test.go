package billing

import (
	"errors"
	"math"
	"testing"
	"time"

	"repasse_imoveis/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoice(t *testing.T) {
	period := entities.Period{Month: 3, Year: 2024}

	t.Run("recurring charges then ad-hoc entries", func(t *testing.T) {
		c := rentContract("1500.00")
		c.MonthlyCharges = append(c.MonthlyCharges,
			entities.RecurringCharge{Kind: entities.ChargeKindIPTU, Description: "IPTU", Value: d("120.50")},
			entities.RecurringCharge{Kind: entities.ChargeKindCondominio, Description: "Condomínio", Value: d("0")},
			entities.RecurringCharge{Kind: entities.ChargeKindDesconto, Description: "Desconto pontualidade", Value: d("50.00"), Surchargeable: true},
		)
		entries := []AdHocEntry{
			{Description: "Reparo portão", Value: 80, Kind: EntryKindDebito},
			{Description: "Crédito vistoria", Value: 30.25, Kind: EntryKindCredito},
		}

		inv, err := BuildInvoice(c, period, entries)
		require.NoError(t, err)

		require.Len(t, inv.Components, 5)
		assert.Equal(t, entities.ChargeKindAluguel, inv.Components[0].Kind)
		assert.Equal(t, entities.ChargeKindIPTU, inv.Components[1].Kind)
		assert.Equal(t, entities.ChargeKindDesconto, inv.Components[2].Kind)
		assert.Equal(t, "-50.00", money(inv.Components[2].OriginalValue))
		assert.False(t, inv.Components[2].Surchargeable)
		assert.Equal(t, entities.ChargeKindTaxaExtra, inv.Components[3].Kind)
		assert.True(t, inv.Components[3].AdHoc)
		assert.Equal(t, entities.ChargeKindDesconto, inv.Components[4].Kind)
		assert.Equal(t, "-30.25", money(inv.Components[4].OriginalValue))

		assert.Equal(t, "1620.25", money(inv.Total))
		assert.Equal(t, "0.00", money(inv.TotalSurcharge))
		assert.Equal(t, entities.InvoiceStatusAberta, inv.Status)
		assert.Equal(t, date(2024, time.March, 10), inv.DueDate)
		assert.Equal(t, InvoiceID(c.ID, period), inv.ID)
		for _, comp := range inv.Components {
			assert.Equal(t, inv.ID, comp.InvoiceID)
			assert.True(t, comp.FinalValue.Equal(comp.OriginalValue))
		}
	})

	t.Run("collects every invalid entry", func(t *testing.T) {
		entries := []AdHocEntry{
			{Description: "", Value: 10, Kind: EntryKindDebito},
			{Description: "NaN", Value: math.NaN(), Kind: EntryKindDebito},
			{Description: "Inf", Value: math.Inf(1), Kind: EntryKindCredito},
			{Description: "Fração", Value: 10.001, Kind: EntryKindDebito},
			{Description: "Tipo", Value: 10, Kind: "outro"},
		}

		_, err := BuildInvoice(rentContract("1000.00"), period, entries)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Messages, 5)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("period outside contract range", func(t *testing.T) {
		c := rentContract("1000.00")
		end := date(2024, time.February, 28)
		c.EndDate = &end

		_, err := BuildInvoice(c, period, nil)
		assert.ErrorIs(t, err, ErrValidation)

		_, err = BuildInvoice(c, entities.Period{Month: 12, Year: 2022}, nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := BuildInvoice(rentContract("1000.00"), entities.Period{Month: 13, Year: 2024}, nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("negative total is rejected", func(t *testing.T) {
		entries := []AdHocEntry{{Description: "Crédito", Value: 2000, Kind: EntryKindCredito}}
		_, err := BuildInvoice(rentContract("1000.00"), period, entries)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestDueDateForClampsToMonthEnd(t *testing.T) {
	c := rentContract("1000.00")
	c.DueDay = 31

	assert.Equal(t, date(2024, time.February, 29), DueDateFor(c, entities.Period{Month: 2, Year: 2024}))
	assert.Equal(t, date(2024, time.April, 30), DueDateFor(c, entities.Period{Month: 4, Year: 2024}))
	assert.Equal(t, date(2024, time.May, 31), DueDateFor(c, entities.Period{Month: 5, Year: 2024}))
}

func TestInvoiceIDIsDeterministic(t *testing.T) {
	p := entities.Period{Month: 1, Year: 2024}
	assert.Equal(t, InvoiceID("ctr-1", p), InvoiceID("ctr-1", p))
	assert.NotEqual(t, InvoiceID("ctr-1", p), InvoiceID("ctr-2", p))
	assert.NotEqual(t, InvoiceID("ctr-1", p), InvoiceID("ctr-1", entities.Period{Month: 2, Year: 2024}))
	assert.NotEqual(t, InvoiceID("ctr-1", p), SettlementID(InvoiceID("ctr-1", p)))
}
