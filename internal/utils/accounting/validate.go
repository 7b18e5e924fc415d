package accounting

import (
	"fmt"
	"strings"

	"github.com/harborbytes/booklion/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LineInput is the minimal shape of a transaction line the validator needs:
// which account it touches and the debit/credit pair.
type LineInput struct {
	AccountID    string
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
}

// Violation describes one broken transaction invariant. Field names the
// offending DTO field ("lines" for transaction-wide violations,
// "lines[i].debitAmount" style for per-line ones).
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"message"`
}

// ValidationErrors collects every invariant violated by a set of lines.
// It unwraps to apperrors.ErrValidation so callers can classify it with
// errors.Is without inspecting the violation list.
type ValidationErrors struct {
	Violations []Violation
}

func (e *ValidationErrors) Error() string {
	reasons := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		reasons[i] = fmt.Sprintf("%s: %s", v.Field, v.Reason)
	}
	return "transaction is invalid: " + strings.Join(reasons, "; ")
}

func (e *ValidationErrors) Unwrap() error {
	return apperrors.ErrValidation
}

// ValidateLines checks the double-entry invariants over a transaction's
// lines and reports every violation at once rather than stopping at the
// first:
//
//  1. at least two lines
//  2. no two lines reference the same account
//  3. per line: amounts are non-negative, at most 2 decimal places,
//     not both zero and not both strictly positive
//  4. sum(debit - credit) over all lines is exactly zero
//
// It is a pure predicate; it returns nil when the lines are valid.
func ValidateLines(lines []LineInput) error {
	var violations []Violation

	if len(lines) < 2 {
		violations = append(violations, Violation{
			Field:  "lines",
			Reason: "transaction must have at least two lines",
		})
	}

	seen := make(map[string]struct{}, len(lines))
	duplicated := false
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; ok {
			duplicated = true
			break
		}
		seen[line.AccountID] = struct{}{}
	}
	if duplicated {
		violations = append(violations, Violation{
			Field:  "lines",
			Reason: "accounts in the transaction lines must be unique",
		})
	}

	balance := decimal.Zero
	for i, line := range lines {
		field := func(name string) string { return fmt.Sprintf("lines[%d].%s", i, name) }

		if line.DebitAmount.IsNegative() {
			violations = append(violations, Violation{field("debitAmount"), "must be zero or positive"})
		}
		if line.CreditAmount.IsNegative() {
			violations = append(violations, Violation{field("creditAmount"), "must be zero or positive"})
		}
		if line.DebitAmount.Exponent() < -2 {
			violations = append(violations, Violation{field("debitAmount"), "must have at most two decimal places"})
		}
		if line.CreditAmount.Exponent() < -2 {
			violations = append(violations, Violation{field("creditAmount"), "must have at most two decimal places"})
		}

		debitSet := line.DebitAmount.IsPositive()
		creditSet := line.CreditAmount.IsPositive()
		if !debitSet && !creditSet {
			violations = append(violations, Violation{
				Field:  field("debitAmount"),
				Reason: "debit and credit must not both be zero",
			})
		}
		if debitSet && creditSet {
			violations = append(violations, Violation{
				Field:  field("debitAmount"),
				Reason: "debit and credit must not both be set",
			})
		}

		balance = balance.Add(line.DebitAmount.Sub(line.CreditAmount))
	}

	if len(lines) > 0 && !balance.IsZero() {
		violations = append(violations, Violation{
			Field:  "lines",
			Reason: fmt.Sprintf("transaction is unbalanced: debits minus credits is %s, expected 0.00", balance.StringFixed(2)),
		})
	}

	if len(violations) > 0 {
		return &ValidationErrors{Violations: violations}
	}
	return nil
}
