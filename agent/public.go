package agent

import (
	"context"
	"fmt"

	"garagebook"
	"garagebook/renderer"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and of solving the user's request.

			The user runs a small automotive repair workshop and keeps a book of customers,
			their vehicles and the invoices raised against them. He is here to understand his
			business: busy months, revenue, regular customers, the kind of work he does most.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			Amounts are in pounds sterling. Never invent figures, always source them from the experts.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper returns the expert in charge of the workshop's customer book.
// It only ever sees aggregates computed locally from the book, never the raw
// customer records.
func NewBookkeeper(store *garagebook.Store, order garagebook.DateOrder) *Expert {

	lib := []Function{
		overviewFunc(store, order),
		monthlyFunc(store, order),
		lookupFunc(store, order),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the workshop's customer book.
		He can compute the relevant figures about the workshop's invoices, customers and revenue.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the bookkeeper of a small automotive repair workshop.
				You know how to use the Tools to extract relevant information about the
				workshop's customers, vehicles, invoices and revenue.
				You are part of a team of experts, yours is everything about the customer book.
				They might ask you questions in approximative language, figure out what they meant.

				Use the available tools to get information about the workshop:
				  - business overview and service mix
				  - monthly revenue breakdown
				  - a customer's vehicles and invoices
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

func overviewFunc(store *garagebook.Store, order garagebook.DateOrder) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Overview",
			Description: `Overview summarises the whole customer book: customer, vehicle and
			invoice counts, total revenue, top customers by revenue, the mix of service types
			and car brands, and the most recent invoices.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted business overview of the workshop.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := store.LoadBook()
			if err != nil {
				return errResponse(id, "Overview", err)
			}
			in := garagebook.NewInsights(b, order)
			return okResponse(id, "Overview", renderer.InsightsMarkdown(in))
		},
	}
}

func monthlyFunc(store *garagebook.Store, order garagebook.DateOrder) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Monthly",
			Description: `Monthly breaks down invoice revenue month by month, most recent first.
			Each month reports its invoice count, total revenue and average invoice value.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": {
						Type:        genai.TypeInteger,
						Description: "Restrict the breakdown to a single year, e.g. 2024. All years by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of monthly totals with a summary header.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := store.LoadBook()
			if err != nil {
				return errResponse(id, "Monthly", err)
			}
			r := garagebook.NewReport(b, order)
			label := "All Time"
			if iyear, ok := args["year"]; ok {
				year, err := intArg(iyear)
				if err != nil {
					return errResponse(id, "Monthly", fmt.Errorf("argument 'year': %w", err))
				}
				r = r.ByYear(year)
				label = fmt.Sprintf("%d", year)
			}
			return okResponse(id, "Monthly", renderer.MonthlyMarkdown(r, label))
		},
	}
}

func lookupFunc(store *garagebook.Store, order garagebook.DateOrder) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Lookup",
			Description: `Lookup searches the customer book and details the matching customers:
			their vehicles and the full invoice history of each, dated and totalled.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"term": {
						Type:        genai.TypeString,
						Description: "Search term, matched case-insensitively against the chosen field.",
					},
					"by": {
						Type:        genai.TypeString,
						Description: "Field to search: 'name' (default), 'reg' or 'mobile'.",
					},
				},
				Required: []string{"term"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report on each matching customer.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			term, ok := args["term"].(string)
			if !ok {
				return errResponse(id, "Lookup", fmt.Errorf("argument 'term' is not a string as expected but %T", args["term"]))
			}
			by := garagebook.ByName
			if iby, has := args["by"]; has {
				sby, ok := iby.(string)
				if !ok {
					return errResponse(id, "Lookup", fmt.Errorf("argument 'by' is not a string as expected but %T", iby))
				}
				var err error
				by, err = garagebook.ParseSearchBy(sby)
				if err != nil {
					return errResponse(id, "Lookup", err)
				}
			}
			b, err := store.LoadBook()
			if err != nil {
				return errResponse(id, "Lookup", err)
			}
			matches := b.Search(term, by)
			if len(matches) == 0 {
				return okResponse(id, "Lookup", fmt.Sprintf("No customer matches %q.", term))
			}
			var out string
			for _, c := range matches {
				out += renderer.CustomerMarkdown(c, order, 0) + "\n"
			}
			return okResponse(id, "Lookup", out)
		},
	}
}

func intArg(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
