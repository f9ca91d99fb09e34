package liability

// Metrics aggregates debt figures across all liabilities.
type Metrics struct {
	TotalLiabilities    float64
	SecuredDebt         float64
	UnsecuredDebt       float64
	ShortTermDebt       float64
	LongTermDebt        float64
	TotalMonthlyPayment float64
	AverageInterestRate float64
}

// ComputeMetrics sums current balances overall and partitioned by category
// and term. The interest rate average is a plain arithmetic mean across
// liabilities, not balance-weighted.
func ComputeMetrics(liabilities []Liability) Metrics {
	var m Metrics

	var rateSum float64

	for _, l := range liabilities {
		m.TotalLiabilities += l.CurrentBalance
		m.TotalMonthlyPayment += l.MonthlyPayment
		rateSum += l.InterestRate

		switch l.Category {
		case CategorySecured:
			m.SecuredDebt += l.CurrentBalance
		case CategoryUnsecured:
			m.UnsecuredDebt += l.CurrentBalance
		}

		switch l.Term {
		case TermShort:
			m.ShortTermDebt += l.CurrentBalance
		case TermLong:
			m.LongTermDebt += l.CurrentBalance
		}
	}

	if len(liabilities) > 0 {
		m.AverageInterestRate = rateSum / float64(len(liabilities))
	}

	return m
}
