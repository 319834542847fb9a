// Package dashboard computes read-only aggregates over an organization's
// transactions and fee assignments. Pure functions: no I/O, deterministic
// for a given input; empty input yields zero-valued aggregates.
package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"dues_tracker/internal/models"
)

const recentLimit = 5

// MonthAmount is a per-month revenue sum keyed by "YYYY-MM".
type MonthAmount struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryAmount is a per-category expense sum.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// FeeStatus counts paid vs unpaid assignments across the loaded fee set.
type FeeStatus struct {
	Paid   int `json:"paid"`
	Unpaid int `json:"unpaid"`
}

type Summary struct {
	TotalRevenue       decimal.Decimal      `json:"total_revenue"`
	TotalExpenses      decimal.Decimal      `json:"total_expenses"`
	Balance            decimal.Decimal      `json:"balance"`
	RevenueByMonth     []MonthAmount        `json:"revenue_by_month"`
	ExpensesByCategory []CategoryAmount     `json:"expenses_by_category"`
	FeeStatus          FeeStatus            `json:"fee_status"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
}

// Summarize recomputes every aggregate from scratch. Totals and groupings
// are order-independent; only RecentTransactions depends on dates, and it is
// always sorted newest first regardless of input order.
func Summarize(transactions []models.Transaction, assignments []models.FeeAssignment) Summary {
	s := Summary{
		TotalRevenue:       decimal.Zero,
		TotalExpenses:      decimal.Zero,
		Balance:            decimal.Zero,
		RevenueByMonth:     []MonthAmount{},
		ExpensesByCategory: []CategoryAmount{},
		RecentTransactions: []models.Transaction{},
	}

	byMonth := map[string]decimal.Decimal{}
	byCategory := map[string]decimal.Decimal{}

	for _, txn := range transactions {
		switch txn.Type {
		case models.TypeRevenue:
			s.TotalRevenue = s.TotalRevenue.Add(txn.Amount)
			key := txn.Date.Format("2006-01")
			byMonth[key] = sumOrZero(byMonth, key).Add(txn.Amount)
		case models.TypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(txn.Amount)
			byCategory[txn.Category] = sumOrZero(byCategory, txn.Category).Add(txn.Amount)
		}
	}
	s.Balance = s.TotalRevenue.Sub(s.TotalExpenses)

	for month, amount := range byMonth {
		s.RevenueByMonth = append(s.RevenueByMonth, MonthAmount{Month: month, Amount: amount})
	}
	sort.Slice(s.RevenueByMonth, func(i, j int) bool {
		return s.RevenueByMonth[i].Month < s.RevenueByMonth[j].Month
	})

	for category, amount := range byCategory {
		s.ExpensesByCategory = append(s.ExpensesByCategory, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(s.ExpensesByCategory, func(i, j int) bool {
		a, b := s.ExpensesByCategory[i], s.ExpensesByCategory[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.Category < b.Category
	})

	for _, assignment := range assignments {
		if assignment.IsPaid {
			s.FeeStatus.Paid++
		} else {
			s.FeeStatus.Unpaid++
		}
	}

	recent := make([]models.Transaction, len(transactions))
	copy(recent, transactions)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	s.RecentTransactions = recent

	return s
}

func sumOrZero(m map[string]decimal.Decimal, key string) decimal.Decimal {
	if v, ok := m[key]; ok {
		return v
	}
	return decimal.Zero
}
