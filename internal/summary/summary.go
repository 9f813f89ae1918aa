// Package summary derives the dashboard view-model from a user's
// transactions, budget limits, and purchase goals. Every function here is
// pure: given the same rows and the same reference time, the output is
// identical and nothing is mutated.
package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"cadee/internal/models"
)

// CurrencySymbol is the display currency for all monetary values.
const CurrencySymbol = "₱" // Philippine peso

const recentTransactionCount = 5

var hundred = decimal.NewFromInt(100)

// TransactionItem is a transaction prepared for display. AmountDisplay is
// the absolute value; IsNegative carries the sign for presentation.
type TransactionItem struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	FolderID      string          `json:"folder_id"`
	FolderName    string          `json:"folder_name"`
	FolderColor   string          `json:"folder_color"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay decimal.Decimal `json:"amount_display"`
	IsNegative    bool            `json:"is_negative"`
}

// GoalItem is a purchase goal with its derived progress percentage.
type GoalItem struct {
	ID           string            `json:"id"`
	Description  string            `json:"description"`
	CurrentSaved decimal.Decimal   `json:"current_saved"`
	TargetAmount decimal.Decimal   `json:"target_amount"`
	Deadline     time.Time         `json:"deadline"`
	Status       models.GoalStatus `json:"status"`
	StatusLabel  string            `json:"status_label"`
	Image        string            `json:"image,omitempty"`
	Progress     decimal.Decimal   `json:"progress"`
}

// Summary is the dashboard view-model.
type Summary struct {
	RecentTransactions []TransactionItem `json:"transactions"`
	TotalSavings       decimal.Decimal   `json:"total_savings"`
	MonthEarnings      decimal.Decimal   `json:"month_earnings"`
	MonthExpenses      decimal.Decimal   `json:"month_expenses"`
	WeekExpenses       decimal.Decimal   `json:"week_expenses"`
	WeeklyLimit        decimal.Decimal   `json:"weekly_limit"`
	MonthlyLimit       decimal.Decimal   `json:"monthly_limit"`
	WeeklySpent        decimal.Decimal   `json:"weekly_spent"`
	MonthlySpent       decimal.Decimal   `json:"monthly_spent"`
	WeeklyPercent      decimal.Decimal   `json:"weekly_percent"`
	MonthlyPercent     decimal.Decimal   `json:"monthly_percent"`
	WeeklyLeftDays     int               `json:"weekly_left_days"`
	MonthlyLeftDays    int               `json:"monthly_left_days"`
	SavingsRatio       decimal.Decimal   `json:"savings_ratio"`
	Goals              []GoalItem        `json:"goals"`
	CurrencySymbol     string            `json:"currency_symbol"`
}

// Empty returns the all-zero view-model served to unauthenticated callers.
func Empty() Summary {
	return Summary{
		RecentTransactions: []TransactionItem{},
		Goals:              []GoalItem{},
		CurrencySymbol:     CurrencySymbol,
	}
}

// Compute derives the full dashboard summary for a user as of now.
// Transactions and goals may be passed in any order; limits of zero are
// treated as "no limit configured".
func Compute(txns []models.Transaction, limit models.BudgetLimit, goals []models.PurchaseGoal, now time.Time) Summary {
	byDateDesc := make([]models.Transaction, len(txns))
	copy(byDateDesc, txns)
	sort.SliceStable(byDateDesc, func(i, j int) bool {
		return byDateDesc[i].Date.After(byDateDesc[j].Date)
	})

	recent := byDateDesc
	if len(recent) > recentTransactionCount {
		recent = recent[:recentTransactionCount]
	}

	monthStart := MonthStart(now)
	weekStart := now.AddDate(0, 0, -7)

	var totalSavings, monthEarnings, monthExpenses, weekExpenses decimal.Decimal
	for _, txn := range txns {
		totalSavings = totalSavings.Add(txn.Amount)

		inMonth := !txn.Date.Before(monthStart) && !txn.Date.After(now)
		inWeek := !txn.Date.Before(weekStart) && !txn.Date.After(now)

		switch {
		case txn.Amount.IsPositive():
			if inMonth {
				monthEarnings = monthEarnings.Add(txn.Amount)
			}
		case txn.Amount.IsNegative():
			if inMonth {
				monthExpenses = monthExpenses.Add(txn.Amount)
			}
			if inWeek {
				weekExpenses = weekExpenses.Add(txn.Amount)
			}
		}
	}
	monthExpensesAbs := monthExpenses.Abs()
	weekExpensesAbs := weekExpenses.Abs()

	// Savings ratio is intentionally unclamped: retaining more than 100%
	// of the month's earnings is meaningful, overspending a limit is not.
	var savingsRatio decimal.Decimal
	if monthEarnings.IsPositive() {
		savingsRatio = monthEarnings.Sub(monthExpensesAbs).Div(monthEarnings).Mul(hundred)
	}

	return Summary{
		RecentTransactions: BuildItems(recent),
		TotalSavings:       totalSavings,
		MonthEarnings:      monthEarnings,
		MonthExpenses:      monthExpensesAbs,
		WeekExpenses:       weekExpensesAbs,
		WeeklyLimit:        limit.WeeklyLimit,
		MonthlyLimit:       limit.MonthlyLimit,
		WeeklySpent:        weekExpensesAbs,
		MonthlySpent:       monthExpensesAbs,
		WeeklyPercent:      spentPercent(weekExpensesAbs, limit.WeeklyLimit),
		MonthlyPercent:     spentPercent(monthExpensesAbs, limit.MonthlyLimit),
		WeeklyLeftDays:     WeeklyLeftDays(now),
		MonthlyLeftDays:    MonthlyLeftDays(now),
		SavingsRatio:       savingsRatio,
		Goals:              buildGoalItems(goals),
		CurrencySymbol:     CurrencySymbol,
	}
}

// BuildItems converts transactions to display items, preserving order.
func BuildItems(txns []models.Transaction) []TransactionItem {
	items := make([]TransactionItem, 0, len(txns))
	for _, txn := range txns {
		items = append(items, TransactionItem{
			ID:            txn.ID,
			Description:   txn.Description,
			Date:          txn.Date,
			FolderID:      txn.FolderID,
			FolderName:    txn.Folder.Name,
			FolderColor:   txn.Folder.ColorHex,
			Amount:        txn.Amount,
			AmountDisplay: txn.Amount.Abs(),
			IsNegative:    txn.Amount.IsNegative(),
		})
	}
	return items
}

// buildGoalItems sorts goals by deadline ascending and derives progress.
// Progress is clamped to 100; a zero or missing target yields 0.
func buildGoalItems(goals []models.PurchaseGoal) []GoalItem {
	byDeadline := make([]models.PurchaseGoal, len(goals))
	copy(byDeadline, goals)
	sort.SliceStable(byDeadline, func(i, j int) bool {
		return byDeadline[i].Deadline.Before(byDeadline[j].Deadline)
	})

	items := make([]GoalItem, 0, len(byDeadline))
	for _, goal := range byDeadline {
		var progress decimal.Decimal
		if goal.TargetAmount.IsPositive() {
			progress = decimal.Min(hundred, goal.CurrentSaved.Div(goal.TargetAmount).Mul(hundred))
		}
		items = append(items, GoalItem{
			ID:           goal.ID,
			Description:  goal.Description,
			CurrentSaved: goal.CurrentSaved,
			TargetAmount: goal.TargetAmount,
			Deadline:     goal.Deadline,
			Status:       goal.Status,
			StatusLabel:  goal.Status.Label(),
			Image:        goal.Image,
			Progress:     progress,
		})
	}
	return items
}

// spentPercent returns min(100, spent/limit*100), or 0 when no limit is
// configured. The zero guard is what keeps the division total.
func spentPercent(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Decimal{}
	}
	return decimal.Min(hundred, spent.Div(limit).Mul(hundred))
}

// MonthStart returns the first instant of now's calendar month in now's location.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// WeeklyLeftDays returns the days remaining in the ISO week (Mon=1..Sun=7).
func WeeklyLeftDays(now time.Time) int {
	days := 7 - isoWeekday(now)
	if days < 0 {
		return 0
	}
	return days
}

// MonthlyLeftDays returns the days remaining in the calendar month.
func MonthlyLeftDays(now time.Time) int {
	days := daysInMonth(now) - now.Day()
	if days < 0 {
		return 0
	}
	return days
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 { // time.Sunday
		return 7
	}
	return wd
}

// daysInMonth exploits day-zero normalization: day 0 of the next month is
// the last day of this one.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
