// Package ai provides the OpenAI-backed implementation of the pipeline's
// TextGenerator boundary.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"website_copywriter/internal/utils"
)

// Generator wraps an OpenAI chat-completions client behind the
// copywriter.TextGenerator contract. It is safe for concurrent use.
type Generator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewGenerator builds a Generator. baseURL overrides the API endpoint when
// non-empty (e.g. for an OpenAI-compatible proxy); model defaults to GPT-4o.
func NewGenerator(apiKey, baseURL, model string, temperature float32) *Generator {
	var client *openai.Client
	if baseURL != "" {
		cfg := openai.DefaultConfig(apiKey)
		cfg.BaseURL = baseURL
		client = openai.NewClientWithConfig(cfg)
	} else {
		client = openai.NewClient(apiKey)
	}
	if model == "" {
		model = openai.GPT4o
	}
	return &Generator{
		client:      client,
		model:       model,
		temperature: temperature,
	}
}

// Generate sends one system+user prompt pair and returns the completion
// text. Transient failures are retried once after a short delay; anything
// else surfaces to the caller unchanged in meaning.
func (g *Generator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: g.temperature,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil && utils.ShouldRetry(err) {
		log.Printf("OpenAI call failed, retrying once after delay... Error: %v", err)
		time.Sleep(1 * time.Second)
		resp, err = g.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for empty response: %+v", resp.Usage)
		return "", errors.New("openai returned empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
