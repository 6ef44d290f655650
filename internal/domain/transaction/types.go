package transaction

type Status string

const (
	StatusApproved Status = "APPROVED"
	StatusDeclined Status = "DECLINED"
	StatusVoided   Status = "VOIDED"
	StatusError    Status = "ERROR"
	StatusPending  Status = "PENDING"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Message() string {
	switch s {
	case StatusApproved:
		return "¡Compra Exitosa!"
	case StatusDeclined:
		return "Transacción Rechazada"
	case StatusVoided:
		return "Transacción Anulada"
	case StatusError:
		return "Error en la Transacción"
	case StatusPending:
		return "Transacción en Proceso"
	default:
		return "Estado Desconocido"
	}
}

func (s Status) IsFinal() bool {
	return s != StatusPending
}

type PaymentMethod string

const (
	MethodCard                PaymentMethod = "CARD"
	MethodNequi               PaymentMethod = "NEQUI"
	MethodPSE                 PaymentMethod = "PSE"
	MethodBancolombiaTransfer PaymentMethod = "BANCOLOMBIA_TRANSFER"
	MethodBancolombiaCollect  PaymentMethod = "BANCOLOMBIA_COLLECT"
	MethodDaviplata           PaymentMethod = "DAVIPLATA"
)

// DisplayName is empty for cards; the card type is shown instead.
func (m PaymentMethod) DisplayName() string {
	switch m {
	case MethodCard:
		return ""
	case MethodNequi:
		return "Nequi"
	case MethodPSE:
		return "PSE"
	case MethodBancolombiaTransfer:
		return "Transferencia Bancolombia"
	case MethodBancolombiaCollect:
		return "Recaudo Bancolombia"
	case MethodDaviplata:
		return "Daviplata"
	default:
		return string(m)
	}
}
