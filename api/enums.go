package api

// TransactionType represents a stock transaction type
type TransactionType string

const (
	TransactionPurchase            TransactionType = "purchase"
	TransactionConsume             TransactionType = "consume"
	TransactionInventoryCorrection TransactionType = "inventory-correction"
	TransactionProductOpened       TransactionType = "product-opened"
)

// UnmarshalJSON rejects transaction types the client does not know about
// instead of passing the raw string through.
func (t *TransactionType) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "transaction type", map[TransactionType]bool{
		TransactionPurchase:            true,
		TransactionConsume:             true,
		TransactionInventoryCorrection: true,
		TransactionProductOpened:       true,
	})
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t TransactionType) String() string {
	return string(t)
}

// PeriodType represents a chore scheduling period type
type PeriodType string

const (
	PeriodManually       PeriodType = "manually"
	PeriodDynamicRegular PeriodType = "dynamic-regular"
	PeriodDaily          PeriodType = "daily"
	PeriodWeekly         PeriodType = "weekly"
	PeriodMonthly        PeriodType = "monthly"
	PeriodYearly         PeriodType = "yearly"
	PeriodAdaptive       PeriodType = "adaptive"
	PeriodHourly         PeriodType = "hourly"
)

func (p *PeriodType) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "period type", map[PeriodType]bool{
		PeriodManually:       true,
		PeriodDynamicRegular: true,
		PeriodDaily:          true,
		PeriodWeekly:         true,
		PeriodMonthly:        true,
		PeriodYearly:         true,
		PeriodAdaptive:       true,
		PeriodHourly:         true,
	})
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p PeriodType) String() string {
	return string(p)
}

// AssignmentType represents a chore assignment strategy
type AssignmentType string

const (
	AssignmentNone             AssignmentType = "no-assignment"
	AssignmentWhoLeastDidFirst AssignmentType = "who-least-did-first"
	AssignmentRandom           AssignmentType = "random"
	AssignmentAlphabetical     AssignmentType = "in-alphabetical-order"
)

func (a *AssignmentType) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "assignment type", map[AssignmentType]bool{
		AssignmentNone:             true,
		AssignmentWhoLeastDidFirst: true,
		AssignmentRandom:           true,
		AssignmentAlphabetical:     true,
	})
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a AssignmentType) String() string {
	return string(a)
}

// decodeEnum parses a quoted enum value. Null and the empty string decode to
// the zero value; required-ness is the owning model's validate concern.
func decodeEnum[T ~string](b []byte, kind string, known map[T]bool) (T, error) {
	if isNull(b) {
		return "", nil
	}
	raw, quoted, err := unquote(b)
	if err != nil || !quoted {
		return "", invalidf("invalid %s %s", kind, string(b))
	}
	if len(raw) == 0 {
		return "", nil
	}
	v := T(raw)
	if !known[v] {
		return "", invalidf("unrecognized %s %q", kind, raw)
	}
	return v, nil
}
