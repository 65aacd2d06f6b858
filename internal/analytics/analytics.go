// Package analytics reduces the static spending and earnings tables into the
// figures shown on the analytics screen.
package analytics

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// CategorySpend is the spend and rewards of one purchase category.
type CategorySpend struct {
	Category   string          `json:"category"`
	Spend      decimal.Decimal `json:"spend"`
	Rewards    decimal.Decimal `json:"rewards"`
	RewardRate decimal.Decimal `json:"rewardRate"`
}

// MonthlyEarnings is the value earned and redeemed in one month.
type MonthlyEarnings struct {
	Month    string          `json:"month"`
	Earned   decimal.Decimal `json:"earned"`
	Redeemed decimal.Decimal `json:"redeemed"`
}

// RewardStatus is one slice of the reward status chart, in points.
type RewardStatus struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Summary is the analytics screen payload.
type Summary struct {
	Categories    []CategorySpend   `json:"categorySpend"`
	Monthly       []MonthlyEarnings `json:"monthlyEarnings"`
	Status        []RewardStatus    `json:"rewardStatus"`
	TotalSpend    decimal.Decimal   `json:"totalSpend"`
	TotalRewards  decimal.Decimal   `json:"totalRewards"`
	AvgRewardRate decimal.Decimal   `json:"avgRewardRate"`
}

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// CategorySpendData returns the per-category table.
func CategorySpendData() []CategorySpend {
	return []CategorySpend{
		{Category: "Dining", Spend: d("850"), Rewards: d("102"), RewardRate: d("4.0")},
		{Category: "Groceries", Spend: d("620"), Rewards: d("74.4"), RewardRate: d("4.0")},
		{Category: "Travel", Spend: d("1200"), Rewards: d("120"), RewardRate: d("3.0")},
		{Category: "Gas", Spend: d("180"), Rewards: d("5.4"), RewardRate: d("3.0")},
		{Category: "Shopping", Spend: d("450"), Rewards: d("22.5"), RewardRate: d("5.0")},
		{Category: "Other", Spend: d("320"), Rewards: d("3.2"), RewardRate: d("1.0")},
	}
}

// MonthlyEarningsData returns earnings for the last five months.
func MonthlyEarningsData() []MonthlyEarnings {
	return []MonthlyEarnings{
		{Month: "Jul", Earned: d("245"), Redeemed: d("0")},
		{Month: "Aug", Earned: d("289"), Redeemed: d("150")},
		{Month: "Sep", Earned: d("312"), Redeemed: d("0")},
		{Month: "Oct", Earned: d("267"), Redeemed: d("200")},
		{Month: "Nov", Earned: d("328"), Redeemed: d("0")},
	}
}

// RewardStatusData returns the reward status chart slices.
func RewardStatusData() []RewardStatus {
	return []RewardStatus{
		{Name: "Active Points", Value: 58390, Color: "#10b981"},
		{Name: "Redeemed", Value: 35000, Color: "#3b82f6"},
		{Name: "Expired", Value: 2500, Color: "#ef4444"},
	}
}

// Summarize computes totals over categories. The average reward rate is a
// percentage rounded to two places, zero when nothing was spent.
func Summarize(categories []CategorySpend, monthly []MonthlyEarnings, status []RewardStatus) Summary {
	totalSpend := decimal.Zero
	totalRewards := decimal.Zero
	for _, c := range categories {
		totalSpend = totalSpend.Add(c.Spend)
		totalRewards = totalRewards.Add(c.Rewards)
	}

	avg := decimal.Zero
	if !totalSpend.IsZero() {
		avg = totalRewards.Div(totalSpend).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return Summary{
		Categories:    categories,
		Monthly:       monthly,
		Status:        status,
		TotalSpend:    totalSpend,
		TotalRewards:  totalRewards,
		AvgRewardRate: avg,
	}
}

// Default summarizes the built-in tables.
func Default() Summary {
	return Summarize(CategorySpendData(), MonthlyEarningsData(), RewardStatusData())
}

// WriteCSV writes the category table as Category,Spend,Rewards,Rate with
// dollar amounts and percentage rates.
func WriteCSV(w io.Writer, categories []CategorySpend) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Category", "Spend", "Rewards", "Rate"}); err != nil {
		return err
	}
	for _, c := range categories {
		record := []string{
			c.Category,
			"$" + c.Spend.String(),
			"$" + c.Rewards.String(),
			c.RewardRate.String() + "%",
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write %s row: %w", c.Category, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
