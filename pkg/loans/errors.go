package loans

import (
	"errors"
	"fmt"
)

// ErrInvalidLoanTerms is matched by every *InvalidLoanTermsError through errors.Is.
var ErrInvalidLoanTerms = errors.New("invalid loan terms")

// InvalidLoanTermsError reports a principal, term, rate or method the engine
// cannot amortize.
type InvalidLoanTermsError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidLoanTermsError) Error() string {
	return fmt.Sprintf("invalid loan terms: %s %s %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidLoanTerms) match.
func (e *InvalidLoanTermsError) Is(target error) bool {
	return target == ErrInvalidLoanTerms
}

func invalidTerms(field, value, reason string) error {
	return &InvalidLoanTermsError{Field: field, Value: value, Reason: reason}
}
