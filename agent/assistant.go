// Package agent is the conversational portfolio assistant.
//
// The assistant answers questions about the user's holdings from a JSON
// snapshot of the current positions and summary, injected as the system
// instruction of a Gemini chat. It holds no tools and no live data: it only
// knows what the snapshot says.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ocolin/stockfolio"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const systemInstruction = `You are a helpful and friendly US stock portfolio assistant.
Analyze the provided JSON data which contains the user's current portfolio positions, trading cash, and a summary.
The user will ask questions about their portfolio. Provide concise and accurate answers based *only* on the data provided.
Format numerical values as currency where appropriate (e.g., $1,234.56).
Do not provide financial advice or make any predictions.
Current portfolio data is as follows:
`

// Assistant is one chat session over a fixed portfolio snapshot.
type Assistant struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewAssistant builds an assistant primed with the given snapshot. The
// snapshot is frozen at creation: a ledger change needs a new assistant.
func NewAssistant(positions []stockfolio.Position, summary stockfolio.Summary) (*Assistant, error) {
	snapshot, err := json.MarshalIndent(struct {
		Summary   stockfolio.Summary    `json:"summary"`
		Positions []stockfolio.Position `json:"positions"`
	}{summary, positions}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cannot marshal portfolio snapshot: %w", err)
	}

	return &Assistant{
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{
				{Text: systemInstruction + string(snapshot)},
			}},
		},
	}, nil
}

// Start opens the chat session.
func (a *Assistant) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the assistant's text answer.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
