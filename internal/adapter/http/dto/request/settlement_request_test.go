package request

import (
	"testing"

	"repasse_imoveis/internal/domain/billing"
)

func TestPrestacaoRequest_ToInput(t *testing.T) {
	r := PrestacaoRequest{
		ContractID:      " ctr-1 ",
		MoveIn:          "2024-01-16",
		Type:            " Proporcional ",
		MonthlyValues:   map[string]float64{"2024-01": 3100, " 2024-02 ": 2900.5},
		DiscountPercent: 10,
		Entries:         []PrestacaoEntryRequest{{Description: "Pintura", Value: 200, Kind: "DEBITO"}},
	}
	in := r.ToInput()
	if in.ContractID != "ctr-1" || in.Type != billing.CalculationProporcional {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.MoveIn == nil || in.MoveOut != nil || len(in.Malformed) != 0 {
		t.Fatalf("unexpected dates: %v %v %v", in.MoveIn, in.MoveOut, in.Malformed)
	}
	if v, ok := in.MonthlyValues["2024-02"]; !ok || v.StringFixed(2) != "2900.50" {
		t.Fatalf("unexpected monthly values: %v", in.MonthlyValues)
	}
	if len(in.Entries) != 1 || in.Entries[0].Kind != billing.EntryKindDebito {
		t.Fatalf("unexpected entries: %+v", in.Entries)
	}
}

func TestPrestacaoRequest_ToInputMalformedDates(t *testing.T) {
	in := PrestacaoRequest{MoveIn: "01/02/2024", MoveOut: "2024-13-40"}.ToInput()
	if in.MoveIn != nil || in.MoveOut != nil {
		t.Fatalf("malformed dates must not be parsed: %v %v", in.MoveIn, in.MoveOut)
	}
	want := []string{
		"data_entrada must match the layout 2006-01-02",
		"data_saida must match the layout 2006-01-02",
	}
	if len(in.Malformed) != len(want) || in.Malformed[0] != want[0] || in.Malformed[1] != want[1] {
		t.Fatalf("unexpected messages: %v", in.Malformed)
	}
}

func TestConfirmPayoutRequest_ResolvePaidAt(t *testing.T) {
	if !(ConfirmPayoutRequest{}).ResolvePaidAt().IsZero() {
		t.Fatalf("expected zero time")
	}
	if got := (ConfirmPayoutRequest{PaidAt: "2024-05-20"}).ResolvePaidAt(); got.Month() != 5 || got.Day() != 20 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestRetentionConfigRequest_ToEntity(t *testing.T) {
	cfg := RetentionConfigRequest{AdminPercent: 10, TransferFee: 5}.ToEntity()
	if !cfg.Active || cfg.AdminPercent.String() != "10" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	inactive := false
	if (RetentionConfigRequest{Active: &inactive}).ToEntity().Active {
		t.Fatalf("expected inactive config")
	}
}
