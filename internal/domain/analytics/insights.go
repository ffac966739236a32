package analytics

import (
	"sort"

	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
)

// profitabilityListSize caps the most/least profitable lists.
const profitabilityListSize = 5

// imbalanceFactor scales the mean sold units into the deficit/excess
// threshold.
const imbalanceFactor = 0.3

// BuildInsights classifies a set of turnover records into imbalance
// candidates and profitability extremes and derives summary statistics.
// The deficit/excess threshold is 30% of the mean sold units of this
// very input, recomputed on every call. The input is never modified.
func BuildInsights(records []entity.TurnoverRecord) *entity.InventoryInsights {
	insights := &entity.InventoryInsights{
		DeficitCandidates: []entity.TurnoverRecord{},
		ExcessCandidates:  []entity.TurnoverRecord{},
		MostProfitable:    []entity.TurnoverRecord{},
		LeastProfitable:   []entity.TurnoverRecord{},
	}
	if len(records) == 0 {
		return insights
	}

	soldSum := 0
	for _, rec := range records {
		soldSum += rec.SoldUnits
	}
	threshold := float64(soldSum) / float64(len(records)) * imbalanceFactor

	for _, rec := range records {
		diff := float64(rec.UnitDifference)
		switch {
		case diff > threshold:
			insights.DeficitCandidates = append(insights.DeficitCandidates, rec)
		case diff < -threshold:
			insights.ExcessCandidates = append(insights.ExcessCandidates, rec)
		}
	}

	byProfitDesc := make([]entity.TurnoverRecord, len(records))
	copy(byProfitDesc, records)
	sort.SliceStable(byProfitDesc, func(i, j int) bool {
		return byProfitDesc[i].Profit > byProfitDesc[j].Profit
	})
	byProfitAsc := make([]entity.TurnoverRecord, len(records))
	copy(byProfitAsc, records)
	sort.SliceStable(byProfitAsc, func(i, j int) bool {
		return byProfitAsc[i].Profit < byProfitAsc[j].Profit
	})

	top := profitabilityListSize
	if top > len(records) {
		top = len(records)
	}
	insights.MostProfitable = byProfitDesc[:top]
	insights.LeastProfitable = byProfitAsc[:top]

	summary := entity.TurnoverSummary{
		DeficitCount: len(insights.DeficitCandidates),
		ExcessCount:  len(insights.ExcessCandidates),
		TotalItems:   len(records),
	}
	marginSum := 0.0
	marginCount := 0
	for _, rec := range records {
		summary.TotalRevenue += rec.SalesRevenue
		summary.TotalCosts += rec.PurchaseCost
		summary.TotalProfit += rec.Profit
		if rec.MarginPct != nil {
			marginSum += *rec.MarginPct
			marginCount++
		}
	}
	if marginCount > 0 {
		avg := marginSum / float64(marginCount)
		summary.AvgMarginPct = &avg
	}
	insights.Summary = summary

	return insights
}
