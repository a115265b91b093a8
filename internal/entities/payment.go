package entities

// PaymentIntent описывает intent на стороне платежного шлюза.
// ClientSecret отдается клиенту для завершения оплаты, Reference хранится у нас.
type PaymentIntent struct {
	Reference    string
	ClientSecret string
	AmountMinor  int64
	Currency     string
	Status       PaymentIntentStatus
}

type PaymentIntentStatus string

const (
	IntentRequiresPayment PaymentIntentStatus = "requires_payment_method"
	IntentProcessing      PaymentIntentStatus = "processing"
	IntentSucceeded       PaymentIntentStatus = "succeeded"
	IntentCanceled        PaymentIntentStatus = "canceled"
)

func (s PaymentIntentStatus) String() string {
	return string(s)
}

// PaymentMethodGateway записывается в payment_method при создании intent.
const PaymentMethodGateway = "stripe"
