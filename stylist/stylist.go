package stylist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/luminafashion/backend/models"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Apology is returned whenever the model is unreachable or comes back
// empty; advice is best effort and never fails a request.
const Apology = "Sorry, I'm having trouble connecting to the fashion brain right now."

const systemTemplate = `
You are "Lumi", the AI Personal Stylist for Lumina Fashion.
Your goal is to help customers find the perfect clothing from our inventory.
Be helpful, stylish, and concise.

Here is our current product inventory (JSON):
%s

RULES:
1. Only recommend products from the inventory list above.
2. When recommending, mention the exact product name and price.
3. If the user asks about fashion advice (e.g., "what to wear to a wedding"), suggest items from the inventory that fit the occasion.
4. Keep responses short (under 100 words) unless asked for detail.
5. If you don't have a specific item (e.g., "swimwear"), politely apologize and suggest the closest alternative (e.g., "summer shorts").
`

// Stylist is the advice collaborator, backed by Gemini.
type Stylist struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func New(ctx context.Context, apiKey, model string, log *zap.Logger) (*Stylist, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Stylist{client: client, model: model, log: log}, nil
}

func (s *Stylist) Close() error {
	return s.client.Close()
}

// Chat is a catalog-grounded conversation handle.
type Chat struct {
	session *genai.ChatSession
	log     *zap.Logger
}

// NewChat seeds a chat with the current catalog as system context.
func (s *Stylist) NewChat(products []models.Product) *Chat {
	inventory := make([]map[string]any, 0, len(products))
	for _, p := range products {
		inventory = append(inventory, map[string]any{
			"id":       p.ID,
			"name":     p.Name,
			"category": p.Category,
			"price":    p.Price,
			"tags":     p.Tags,
			"colors":   p.Colors,
		})
	}
	payload, _ := json.Marshal(inventory)

	m := s.client.GenerativeModel(s.model)
	m.SetTemperature(0.7)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(fmt.Sprintf(systemTemplate, payload))},
	}
	return &Chat{session: m.StartChat(), log: s.log}
}

// Send forwards the shopper's message and returns the reply text, or an
// apology when the call fails.
func (c *Chat) Send(ctx context.Context, message string) string {
	resp, err := c.session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		c.log.Warn("stylist chat failed", zap.Error(err))
		return Apology
	}
	return replyText(resp, Apology)
}

// Advice is the stateless per-product Q&A path.
func (s *Stylist) Advice(ctx context.Context, productName, question string) string {
	prompt := fmt.Sprintf(
		"The user is looking at the product %q. They ask: %q. Answer briefly focusing on fashion advice and care.",
		productName, question,
	)
	m := s.client.GenerativeModel(s.model)
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		s.log.Warn("product advice failed", zap.String("product", productName), zap.Error(err))
		return Apology
	}
	return replyText(resp, "I couldn't generate advice at the moment.")
}

func replyText(resp *genai.GenerateContentResponse, fallback string) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}
