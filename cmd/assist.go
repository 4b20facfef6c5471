package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"garagebook/agent"

	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the chat assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the assistant" }
func (*assistCmd) Usage() string {
	return `gbk assist [<initial question>]

  Starts a chat session about the business: busy months, revenue,
  regular customers. Needs a Gemini API key in GEMINI_API_KEY (a .env
  file is honoured). Type 'bye' to leave.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	order, err := DateOrder()
	if err != nil {
		return fail(err)
	}

	if os.Getenv("GEMINI_API_KEY") == "" {
		fmt.Fprintln(os.Stderr, "Error: GEMINI_API_KEY is not set. Put the key in the environment or in a .env file.")
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	bookkeeper := agent.NewBookkeeper(Store(), order)
	a := agent.New(os.Stdout, os.Stdin, bookkeeper)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden || apiErr.Code == http.StatusBadRequest) {
			fmt.Fprintln(os.Stderr, "Error: the Gemini API rejected the key in GEMINI_API_KEY. Check the key and try again.")
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
