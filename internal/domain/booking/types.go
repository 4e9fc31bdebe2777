package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseStatus rejects unrecognized values at the boundary.
func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
	// PaymentUnknown absorbs free-form legacy values on read. It is never
	// accepted as input.
	PaymentUnknown PaymentStatus = "unknown"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

// ParsePaymentStatus rejects unrecognized values at the boundary.
func ParsePaymentStatus(v string) (PaymentStatus, error) {
	p := PaymentStatus(v)
	if !p.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return p, nil
}

// PaymentStatusFromStore maps stored values, folding anything unrecognized
// into PaymentUnknown instead of propagating loose strings.
func PaymentStatusFromStore(v string) PaymentStatus {
	p := PaymentStatus(v)
	if !p.IsValid() {
		return PaymentUnknown
	}
	return p
}
