package domain

import "errors"

// Kind groups settlement errors by how a caller is expected to react to them.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthorization
	KindState
	KindData
	KindArithmetic
	KindTransfer
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindState:
		return "state"
	case KindData:
		return "data"
	case KindArithmetic:
		return "arithmetic"
	case KindTransfer:
		return "transfer"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a settlement failure with a stable machine-readable code. Values
// declared in this file are sentinels and are compared with errors.Is.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

var (
	ErrInvalidCPM        = newError(KindValidation, "InvalidCPM", "CPM must be greater than 0")
	ErrInvalidBudget     = newError(KindValidation, "InvalidBudget", "budget must be greater than 0")
	ErrInvalidTimeRange  = newError(KindValidation, "InvalidTimeRange", "end time must be after start time")
	ErrInvalidLikeWeight = newError(KindValidation, "InvalidLikeWeight", "like weight must be greater than 0")
	ErrInvalidCampaignID = newError(KindValidation, "InvalidCampaignID", "campaign id must be 1-64 printable characters")
	ErrInvalidIdentity   = newError(KindValidation, "InvalidIdentity", "identity must be a base64url ed25519 public key")
	ErrInvalidAccount    = newError(KindValidation, "InvalidAccount", "account must not be empty")

	ErrUnauthorizedCreator = newError(KindAuthorization, "UnauthorizedCreator", "only the assigned creator can accept this campaign")
	ErrUnauthorizedBrand   = newError(KindAuthorization, "UnauthorizedBrand", "only the brand can close this campaign")
	ErrUnauthorizedOracle  = newError(KindAuthorization, "UnauthorizedOracle", "only the oracle can report metrics")

	ErrCampaignExists        = newError(KindState, "CampaignExists", "campaign already exists")
	ErrCampaignAlreadyActive = newError(KindState, "CampaignAlreadyActive", "campaign is already active")
	ErrCampaignNotActive     = newError(KindState, "CampaignNotActive", "campaign is not active")
	ErrNoFundsInEscrow       = newError(KindState, "NoFundsInEscrow", "no funds in escrow")

	ErrMetricsCannotDecrease = newError(KindData, "MetricsCannotDecrease", "metrics cannot decrease")

	ErrArithmeticOverflow = newError(KindArithmetic, "ArithmeticOverflow", "arithmetic overflow")

	ErrInsufficientFunds    = newError(KindTransfer, "InsufficientFunds", "insufficient funds in source account")
	ErrUnauthorizedTransfer = newError(KindTransfer, "UnauthorizedTransfer", "transfer authority does not control source account")
	ErrInvalidTransfer      = newError(KindTransfer, "InvalidTransfer", "transfer amount must be positive and accounts distinct")

	ErrCampaignNotFound = newError(KindNotFound, "CampaignNotFound", "campaign not found")

	ErrInvariantViolation = newError(KindInternal, "InvariantViolation", "campaign invariant violated")
)

// KindOf returns the kind of the first *Error in err's chain, or KindInternal
// when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "Internal"
}
