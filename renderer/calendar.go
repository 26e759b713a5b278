package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	md "github.com/nao1215/markdown"
	"github.com/omaret/daykeep"
)

// MonthMarkdown renders a month grid, Sunday first, marking the days
// that carry at least one scheduled entry.
func MonthMarkdown(year int, month time.Month, scheduled daykeep.DaySet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	first := daykeep.NewDate(year, month, 1)
	doc.H1(first.Format("January 2006"))

	table := md.TableSet{
		Header: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	}

	row := make([]string, 7)
	for i := 0; i < int(first.Weekday()); i++ {
		row[i] = ""
	}
	for _, day := range daykeep.MonthDays(year, month) {
		row[int(day.Weekday())] = dayCell(day, scheduled)
		if day.Weekday() == time.Saturday {
			table.Rows = append(table.Rows, row)
			row = make([]string, 7)
		}
	}
	if rowHasContent(row) {
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}

// WeekMarkdown renders the week containing day, Sunday first.
func WeekMarkdown(day daykeep.Date, scheduled daykeep.DaySet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	start := daykeep.WeekStart(day)
	doc.H1(fmt.Sprintf("Week of %s", start))

	table := md.TableSet{
		Header: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	}
	row := make([]string, 0, 7)
	for _, d := range daykeep.WeekDays(start) {
		row = append(row, dayCell(d, scheduled))
	}
	table.Rows = append(table.Rows, row)
	doc.Table(table)

	return doc.String()
}

// YearMarkdown renders a compact view of the year, one line per month
// with the scheduled days listed.
func YearMarkdown(year int, scheduled daykeep.DaySet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%d", year))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Month", "Scheduled Days"},
	}
	for m := time.January; m <= time.December; m++ {
		var days []string
		for _, d := range daykeep.MonthDays(year, m) {
			if scheduled.Has(d) {
				days = append(days, fmt.Sprintf("%d", d.Day()))
			}
		}
		table.Rows = append(table.Rows, []string{
			daykeep.NewDate(year, m, 1).Format("January"),
			strings.Join(days, ", "),
		})
	}
	doc.Table(table)

	return doc.String()
}

// EntriesMarkdown renders the entry list for a range.
func EntriesMarkdown(entries []daykeep.CalendarEntry, rng daykeep.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Entries from %s to %s", rng.From, rng.To))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"ID", "Date", "Title", "Repeats"},
	}
	for _, e := range entries {
		day := e.StartDay()
		if !rng.Contains(day) && !e.IsRecurring() {
			continue
		}
		repeats := ""
		if e.Recurrence != nil {
			repeats = e.Recurrence.String()
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.ID),
			day.String(),
			e.Title,
			repeats,
		})
	}
	doc.Table(table)

	return doc.String()
}

func dayCell(d daykeep.Date, scheduled daykeep.DaySet) string {
	if scheduled.Has(d) {
		return fmt.Sprintf("**%d** •", d.Day())
	}
	return fmt.Sprintf("%d", d.Day())
}

func rowHasContent(row []string) bool {
	for _, c := range row {
		if c != "" {
			return true
		}
	}
	return false
}
