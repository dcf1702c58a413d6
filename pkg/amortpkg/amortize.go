// Package amortpkg computes fixed-payment amortization plans for loans and mortgages.
package amortpkg

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidPrincipal indicates that the principal is missing, malformed or not positive.
	ErrInvalidPrincipal = errors.New("principal must be a positive number")
	// ErrInvalidRate indicates that the annual percentage rate is missing, malformed or negative.
	ErrInvalidRate = errors.New("apr must be a non-negative number")
	// ErrInvalidTerm indicates that the term is not a positive number of months.
	ErrInvalidTerm = errors.New("term must be a positive number of months")
)

// Divisions below keep 16 digits which is plenty for NUMERIC(15,2) money.
const divPrecision = 16

var (
	one          = decimal.NewFromInt(1)
	monthsInYear = decimal.NewFromInt(12)
	percent      = decimal.NewFromInt(100)
)

// Plan holds the computed amortization figures at full precision.
// Callers round to currency minor units only when rendering.
type Plan struct {
	Principal      decimal.Decimal
	APR            decimal.Decimal
	TermMonths     int
	MonthlyPayment decimal.Decimal
	TotalPayment   decimal.Decimal
	TotalInterest  decimal.Decimal
}

// Amortize computes the fixed monthly payment for the given principal,
// annual percentage rate and term using the standard amortization formula:
//
//	payment = P*r*(1+r)^n / ((1+r)^n - 1), r = APR/100/12
//
// A zero rate degenerates to P/n.
func Amortize(principal, apr string, termMonths int) (Plan, error) {
	p, err := decimal.NewFromString(principal)
	if err != nil || p.LessThanOrEqual(decimal.Zero) {
		return Plan{}, ErrInvalidPrincipal
	}

	rate, err := decimal.NewFromString(apr)
	if err != nil || rate.IsNegative() {
		return Plan{}, ErrInvalidRate
	}

	if termMonths <= 0 {
		return Plan{}, ErrInvalidTerm
	}

	n := decimal.NewFromInt(int64(termMonths))
	r := rate.DivRound(percent.Mul(monthsInYear), divPrecision)

	var payment decimal.Decimal
	if r.IsZero() {
		payment = p.DivRound(n, divPrecision)
	} else {
		compound := one.Add(r).Pow(n)
		payment = p.Mul(r).Mul(compound).DivRound(compound.Sub(one), divPrecision)
	}

	total := payment.Mul(n)

	return Plan{
		Principal:      p,
		APR:            rate,
		TermMonths:     termMonths,
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total.Sub(p),
	}, nil
}

// ScheduleRow is one month of an amortization schedule, rounded to cents.
type ScheduleRow struct {
	Period    int             `json:"period"`
	Payment   decimal.Decimal `json:"payment"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Balance   decimal.Decimal `json:"balance"`
}

// Schedule expands a plan into its per-month breakdown. The final payment
// absorbs accumulated cent rounding so the balance lands exactly on zero.
func Schedule(plan Plan) []ScheduleRow {
	r := plan.APR.DivRound(percent.Mul(monthsInYear), divPrecision)
	payment := plan.MonthlyPayment.Round(2)
	balance := plan.Principal.Round(2)

	rows := make([]ScheduleRow, 0, plan.TermMonths)

	for period := 1; period <= plan.TermMonths; period++ {
		interest := balance.Mul(r).Round(2)
		principal := payment.Sub(interest)

		if period == plan.TermMonths || principal.GreaterThan(balance) {
			principal = balance
		}

		balance = balance.Sub(principal)

		rows = append(rows, ScheduleRow{
			Period:    period,
			Payment:   principal.Add(interest),
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
	}

	return rows
}
