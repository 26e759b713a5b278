package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/omaret/daykeep"
)

// Section pairs a dashboard section title with its computed summary.
type Section struct {
	Title  string
	Result daykeep.SummaryResult
}

// DashboardMarkdown renders the dashboard sections in order. Disabled
// sections must be filtered out by the caller.
func DashboardMarkdown(sections []Section) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")

	for _, s := range sections {
		doc.H2(s.Title)
		if s.Result.Empty {
			doc.PlainText("Nothing to show yet.")
			continue
		}
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"", ""},
		}
		for _, stat := range s.Result.Stats {
			table.Rows = append(table.Rows, []string{stat.Label, stat.Value})
		}
		doc.Table(table)
		if s.Result.Secondary != "" {
			doc.PlainText(s.Result.Secondary)
		}
	}

	return doc.String()
}

// TasksMarkdown renders the task list.
func TasksMarkdown(tasks []daykeep.Task) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Tasks")

	if len(tasks) == 0 {
		doc.PlainText("No tasks recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"ID", "Done", "Description", "Type", "Due"},
	}
	for _, t := range tasks {
		due := ""
		if t.DueDate != nil {
			due = daykeep.DayOf(*t.DueDate).String()
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", t.ID),
			checkbox(t.Completed),
			t.Description,
			t.Type.String(),
			due,
		})
	}
	doc.Table(table)

	return doc.String()
}

// GoalsMarkdown renders the goal list with progress bars.
func GoalsMarkdown(goals []daykeep.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Goals")

	if len(goals) == 0 {
		doc.PlainText("No goals recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"ID", "Title", "Progress", "Target"},
	}
	for _, g := range goals {
		target := ""
		if g.TargetDate != nil {
			target = daykeep.DayOf(*g.TargetDate).String()
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", g.ID),
			g.Title,
			progressBar(g.Progress),
			target,
		})
	}
	doc.Table(table)

	return doc.String()
}

// BudgetMarkdown renders the budget items with a closing balance row.
func BudgetMarkdown(items []daykeep.BudgetItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Budget")

	if len(items) == 0 {
		doc.PlainText("No budget items recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Date", "Description", "Type", "Amount"},
	}
	var net daykeep.Money
	for _, it := range items {
		amount := it.Amount()
		if it.Type == daykeep.Expense {
			net = net.Sub(amount)
		} else {
			net = net.Add(amount)
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", it.ID),
			it.Day().String(),
			it.Description,
			it.Type.String(),
			amount.String(),
		})
	}
	table.Rows = append(table.Rows, []string{
		"", "", md.Bold("Net"), "", md.Bold(net.SignedString()),
	})
	doc.Table(table)

	return doc.String()
}

func progressBar(progress int64) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	filled := int(progress / 10)
	var b bytes.Buffer
	for i := 0; i < 10; i++ {
		if i < filled {
			b.WriteByte('#')
		} else {
			b.WriteByte('-')
		}
	}
	return fmt.Sprintf("`%s` %d%%", b.String(), progress)
}
