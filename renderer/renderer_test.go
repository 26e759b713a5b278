package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/omaret/daykeep"
)

func TestCryptoMarkdown(t *testing.T) {
	assets := []daykeep.AssetPL{
		{Symbol: "BTC", ProfitLossUSD: 1000, ProfitLossPercent: daykeep.Percent(11.11), Status: daykeep.Positive},
		{Symbol: "ETH", ProfitLossUSD: -50.5, ProfitLossPercent: daykeep.Percent(-5), Status: daykeep.Negative},
	}

	md := CryptoMarkdown(assets, 949.5)

	for _, want := range []string{
		"# Crypto Portfolio",
		"BTC", "+$1000.00", "+11.11%",
		"ETH", "-$50.50", "-5.00%",
		"Total", "+$949.50",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestCryptoMarkdownEmpty(t *testing.T) {
	md := CryptoMarkdown(nil, 0)
	if !strings.Contains(md, "No crypto holdings recorded.") {
		t.Errorf("empty portfolio must say so:\n%s", md)
	}
}

func TestMonthMarkdown(t *testing.T) {
	scheduled := make(daykeep.DaySet)
	scheduled.Add(daykeep.NewDate(2026, time.September, 10))

	md := MonthMarkdown(2026, time.September, scheduled)

	if !strings.Contains(md, "# September 2026") {
		t.Errorf("missing month title:\n%s", md)
	}
	if !strings.Contains(md, "Sun") || !strings.Contains(md, "Sat") {
		t.Errorf("grid must be a Sunday-first week:\n%s", md)
	}
	if !strings.Contains(md, "**10**") {
		t.Errorf("scheduled day 10 must be marked:\n%s", md)
	}
	if strings.Contains(md, "**11**") {
		t.Errorf("unscheduled day 11 must not be marked:\n%s", md)
	}
}

func TestWeekMarkdown(t *testing.T) {
	scheduled := make(daykeep.DaySet)
	scheduled.Add(daykeep.NewDate(2026, time.September, 1))

	// 2026-09-01 is a Tuesday, its week starts Sunday 2026-08-30.
	md := WeekMarkdown(daykeep.NewDate(2026, time.September, 1), scheduled)

	if !strings.Contains(md, "Week of 2026-08-30") {
		t.Errorf("missing week title:\n%s", md)
	}
	if !strings.Contains(md, "**1**") {
		t.Errorf("scheduled day must be marked:\n%s", md)
	}
}

func TestYearMarkdown(t *testing.T) {
	scheduled := make(daykeep.DaySet)
	scheduled.Add(daykeep.NewDate(2026, time.March, 5))
	scheduled.Add(daykeep.NewDate(2026, time.March, 20))

	md := YearMarkdown(2026, scheduled)

	if !strings.Contains(md, "# 2026") {
		t.Errorf("missing year title:\n%s", md)
	}
	if !strings.Contains(md, "5, 20") {
		t.Errorf("March's scheduled days must be listed:\n%s", md)
	}
}

func TestDashboardMarkdown(t *testing.T) {
	sections := []Section{
		{Title: "Tasks", Result: daykeep.SummaryResult{
			Stats:     []daykeep.Stat{{Label: "Total", Value: "3"}},
			Secondary: "Latest: water plants",
		}},
		{Title: "Goals", Result: daykeep.SummaryResult{Empty: true}},
	}

	md := DashboardMarkdown(sections)

	for _, want := range []string{
		"# Dashboard",
		"## Tasks", "Total", "3", "Latest: water plants",
		"## Goals", "Nothing to show yet.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestTasksMarkdown(t *testing.T) {
	due := daykeep.NewDate(2026, time.September, 15).StartNanos()
	tasks := []daykeep.Task{
		{ID: 1, Description: "water plants", Type: daykeep.DayOfWeekTask(time.Monday), DueDate: &due},
		{ID: 2, Description: "rest", Completed: true, Type: daykeep.WeekendTask()},
	}

	md := TasksMarkdown(tasks)

	for _, want := range []string{"water plants", "monday", "2026-09-15", "[x]", "[ ]"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestBudgetMarkdown(t *testing.T) {
	date := daykeep.NewDate(2026, time.September, 5).StartNanos()
	items := []daykeep.BudgetItem{
		{ID: 1, Date: date, Description: "salary", Type: daykeep.Income, AmountCents: 250000},
		{ID: 2, Date: date, Description: "rent", Type: daykeep.Expense, AmountCents: 120000},
	}

	md := BudgetMarkdown(items)

	for _, want := range []string{"salary", "$2,500.00", "rent", "$1,200.00", "Net", "+$1,300.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMarketMarkdown(t *testing.T) {
	assets := []daykeep.MarketAsset{
		{Symbol: "BTC", Name: "Bitcoin", Price: 65000},
	}
	md := MarketMarkdown(assets)
	for _, want := range []string{"# Market Overview", "BTC", "Bitcoin", "$65000.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}
