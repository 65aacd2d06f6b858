package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/pathakanu/rewardsHub/internal/model"
)

const maxFallbackLength = 80

// Client wraps the OpenAI SDK and provides utility helpers.
type Client struct {
	apiKey string
	client *openai.Client
	model  openai.ChatModel
}

// New returns an OpenAI client when apiKey is provided. Without a key the
// returned client answers from local templates.
func New(apiKey string) *Client {
	if apiKey == "" {
		return &Client{}
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		apiKey: apiKey,
		client: &client,
		model:  openai.ChatModelGPT4oMini,
	}
}

// Enabled reports whether requests go to the API.
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// DescribeOfferReminder writes the one-line description of a reminder created
// for offer.
func (c *Client) DescribeOfferReminder(ctx context.Context, offer model.Offer) (string, error) {
	if strings.TrimSpace(offer.Merchant) == "" {
		return "", fmt.Errorf("offer merchant cannot be empty")
	}
	if !c.Enabled() {
		return fallbackDescription(offer), nil
	}

	details := fmt.Sprintf("Merchant: %s\nReward: %s\nCard: %s\nDetails: %s\nTerms: %s\nExpires in: %d days",
		offer.Merchant, offer.Reward, offer.CardName, offer.Description, offer.Terms, offer.DaysUntilExpiry)

	req := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String("You write reminder descriptions for credit card reward offers. Reply with one short sentence under 80 characters, no emoji."),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(details),
					},
				},
			},
		},
		Temperature:         openai.Float(0.3),
		MaxCompletionTokens: openai.Int(40),
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion received")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return fallbackDescription(offer), nil
	}
	return text, nil
}

func fallbackDescription(offer model.Offer) string {
	text := offer.Reward + " ends soon"
	if d := strings.TrimSpace(offer.Description); d != "" {
		text = offer.Reward + ": " + d
	}
	runes := []rune(text)
	if len(runes) > maxFallbackLength {
		return string(runes[:maxFallbackLength]) + "..."
	}
	return text
}
