package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the interactive chat session around an Assistant.
type Agent struct {
	w         io.Writer
	r         *bufio.Reader
	Assistant *Assistant
}

// New creates a new Agent over the given assistant, writing its output to w
// and reading user input from r.
func New(w io.Writer, r io.Reader, assistant *Assistant) *Agent {
	return &Agent{
		w:         w,
		r:         bufio.NewReader(r),
		Assistant: assistant,
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session. Extra prompts are consumed before
// reading from the user, so a question can be passed on the command line.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Assistant.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Ask about your portfolio. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Assistant.Ask(ctx, input)
		if err != nil {
			// The assistant being down is not fatal to the session.
			fmt.Fprintf(a.w, "Sorry, I'm having trouble answering right now (%v). Please try again in a moment.\n", err)
			continue
		}
		fmt.Fprintln(a.w, answer)
	}
}
