package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/omaret/daykeep"
	"github.com/omaret/daykeep/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to stay on top of his daily life: tasks, goals,
			scheduled events, budget, and the crypto assets he holds.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know his tracker, check it first to understand what he records.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the market analyst expert. It grounds its answers
// with Google Search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		very well aware of crypto assets, exchanges and the latest market news.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in crypto markets, you can search and find about anything related to
			coins, exchanges, protocols and market moves. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewPlanner returns the planner expert. It reads the user's tracker
// through its function library.
func NewPlanner(load func() (*daykeep.Store, error)) *Expert {

	lib := []Function{dashboardFunc(load), profitLossFunc(load), scheduleFunc(load)}

	return &Expert{
		Name: "Planner",
		Description: `This is the Planner. He is in charge of reading the user's tracker.
		He can summarize tasks, goals, budget, the schedule, and the crypto portfolio's profit and loss.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a planner in charge of the user's personal tracker.
				You know how to use the Tools to extract relevant information about the user's
				tasks, goals, schedule, budget and crypto holdings.
				You are part of a team of experts, yours is everything the user records. They might ask
				you questions about the tracker, pardon their approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func dashboardFunc(load func() (*daykeep.Store, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Dashboard",
			Description: `Dashboard summarizes the user's tracker: task counts, goal progress,
			upcoming calendar entries and the current month's budget.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dashboard with one section per tracked area.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			store, err := load()
			if err != nil {
				return errResponse(id, "Dashboard", err)
			}
			now := time.Now()
			sections := []renderer.Section{
				{Title: "Tasks", Result: daykeep.TasksSummary(store.Tasks(), daykeep.ModeStats, now)},
				{Title: "Goals", Result: daykeep.GoalsSummary(store.Goals(), daykeep.ModeStats)},
				{Title: "Calendar", Result: daykeep.CalendarSummary(store.Entries(), daykeep.ModeStats, now)},
				{Title: "Budget", Result: daykeep.BudgetSummary(store.BudgetItems(), daykeep.ModeStats, now)},
			}
			return okResponse(id, "Dashboard", renderer.DashboardMarkdown(sections))
		},
	}
}

func profitLossFunc(load func() (*daykeep.Store, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "ProfitLoss",
			Description: `ProfitLoss lists the user's crypto assets with their unrealized profit
			and loss, aggregated per asset and sorted from best to worst performer.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of assets with USD and percent profit/loss.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			store, err := load()
			if err != nil {
				return errResponse(id, "ProfitLoss", err)
			}
			entries := store.CryptoEntries()
			assets := daykeep.AssetProfitLoss(entries, nil)
			total := daykeep.TotalPortfolioProfitLoss(entries, nil)
			return okResponse(id, "ProfitLoss", renderer.CryptoMarkdown(assets, total))
		},
	}
}

func scheduleFunc(load func() (*daykeep.Store, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Schedule",
			Description: `Schedule lists the days of a month that carry at least one calendar
			entry or recurring occurrence.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": {
						Type:        genai.TypeString,
						Description: "The month to look at, formatted YYYY-MM. The current month is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted month grid marking the scheduled days.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			day := daykeep.Today()
			if raw, ok := args["month"]; ok {
				s, ok := raw.(string)
				if !ok {
					return errResponse(id, "Schedule", fmt.Errorf("argument 'month' is not a string as expected but %T", raw))
				}
				parsed, err := daykeep.ParseDate(s + "-01")
				if err != nil {
					return errResponse(id, "Schedule", fmt.Errorf("argument 'month' must be formatted YYYY-MM, got %q", s))
				}
				day = parsed
			}
			store, err := load()
			if err != nil {
				return errResponse(id, "Schedule", err)
			}
			first := daykeep.NewDate(day.Year(), day.Month(), 1)
			rng := daykeep.NewRange(first, first.AddMonth(1).Add(-1))
			scheduled := daykeep.ScheduledDays(store.Entries(), rng)
			return okResponse(id, "Schedule", renderer.MonthMarkdown(day.Year(), day.Month(), scheduled))
		},
	}
}
