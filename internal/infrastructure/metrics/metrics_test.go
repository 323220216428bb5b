package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecording(t *testing.T) {
	m := New()

	m.SettlementComputed("success", 40*time.Millisecond)
	m.SettlementComputed("success", 10*time.Millisecond)
	m.SettlementComputed("error", time.Millisecond)
	m.InvoiceAction("registrar_pagamento", "success")
	m.ConcurrentModification("boleto")
	m.ConcurrentModification("boleto")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SettlementsComputed.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SettlementsComputed.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InvoiceActions.WithLabelValues("registrar_pagamento", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ConcurrentModifications.WithLabelValues("boleto")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SettlementLatency))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SettlementComputed("success", time.Second)
		m.InvoiceAction("lancar", "error")
		m.ConcurrentModification("boleto")
	})
}

func TestHandlerExposesBusinessMetrics(t *testing.T) {
	m := New()
	m.InvoiceAction("cancelar", "success")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `repasse_invoice_actions_total{action="cancelar",outcome="success"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestInstancesDoNotShareRegistries(t *testing.T) {
	a, b := New(), New()
	a.InvoiceAction("lancar", "success")
	assert.Equal(t, 0.0, testutil.ToFloat64(b.InvoiceActions.WithLabelValues("lancar", "success")))
}
