package billing

import "repasse_imoveis/internal/domain/entities"

// Action is something a user or an automation may do to an invoice.
type Action string

const (
	ActionRegistrarPagamento   Action = "REGISTRAR_PAGAMENTO"
	ActionGerarBoleto          Action = "GERAR_BOLETO"
	ActionRecalcularAcrescimos Action = "RECALCULAR_ACRESCIMOS"
	ActionEditarComponentes    Action = "EDITAR_COMPONENTES"
	ActionLancar               Action = "LANCAR"
	ActionEmitir               Action = "EMITIR"
	ActionMarcarAtraso         Action = "MARCAR_ATRASO"
	ActionCancelar             Action = "CANCELAR"
)

// actionOrder is the presentation order of actions in API responses.
var actionOrder = []Action{
	ActionRegistrarPagamento,
	ActionGerarBoleto,
	ActionRecalcularAcrescimos,
	ActionEditarComponentes,
	ActionLancar,
	ActionEmitir,
	ActionMarcarAtraso,
	ActionCancelar,
}

type capability struct {
	// target is the status after the action; empty keeps the current status.
	target entities.InvoiceStatus
}

// capabilities is the single source of truth for what each status permits. API
// responses and UI affordances are derived from it.
var capabilities = map[entities.InvoiceStatus]map[Action]capability{
	entities.InvoiceStatusAberta: {
		ActionRegistrarPagamento:   {target: entities.InvoiceStatusPaga},
		ActionGerarBoleto:          {},
		ActionRecalcularAcrescimos: {},
		ActionEditarComponentes:    {},
		ActionEmitir:               {target: entities.InvoiceStatusPendente},
		ActionCancelar:             {target: entities.InvoiceStatusCancelada},
	},
	entities.InvoiceStatusPendente: {
		ActionRegistrarPagamento:   {target: entities.InvoiceStatusPaga},
		ActionGerarBoleto:          {},
		ActionRecalcularAcrescimos: {},
		ActionEditarComponentes:    {},
		ActionMarcarAtraso:         {target: entities.InvoiceStatusEmAtraso},
		ActionCancelar:             {target: entities.InvoiceStatusCancelada},
	},
	entities.InvoiceStatusEmAtraso: {
		ActionRegistrarPagamento:   {target: entities.InvoiceStatusPaga},
		ActionGerarBoleto:          {},
		ActionRecalcularAcrescimos: {},
		ActionEditarComponentes:    {},
		ActionCancelar:             {target: entities.InvoiceStatusCancelada},
	},
	entities.InvoiceStatusPaga: {
		ActionGerarBoleto: {},
		ActionLancar:      {target: entities.InvoiceStatusLancada},
	},
	entities.InvoiceStatusLancada: {
		ActionGerarBoleto: {},
	},
	entities.InvoiceStatusCancelada: {
		ActionGerarBoleto: {},
	},
}

// IsMutating reports whether the action changes the invoice.
func (a Action) IsMutating() bool {
	return a != ActionGerarBoleto
}

// Allowed reports whether action is permitted in status.
func Allowed(status entities.InvoiceStatus, action Action) bool {
	_, ok := capabilities[status][action]
	return ok
}

// AllowedActions lists the actions permitted in status in a stable order.
func AllowedActions(status entities.InvoiceStatus) []Action {
	out := make([]Action, 0, len(actionOrder))
	for _, a := range actionOrder {
		if Allowed(status, a) {
			out = append(out, a)
		}
	}
	return out
}

// Transition returns the status reached by applying action to status. A rejected
// action leaves the status unchanged and returns an InvalidTransitionError.
func Transition(status entities.InvoiceStatus, action Action) (entities.InvoiceStatus, error) {
	c, ok := capabilities[status][action]
	if !ok {
		return status, &InvalidTransitionError{From: string(status), Action: string(action)}
	}
	if c.target == "" {
		return status, nil
	}
	return c.target, nil
}

// Apply moves inv through action, mutating its status on success.
func Apply(inv *entities.Invoice, action Action) error {
	next, err := Transition(inv.Status, action)
	if err != nil {
		return err
	}
	inv.Status = next
	return nil
}
