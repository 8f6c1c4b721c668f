// Package oracle asks an OpenAI-compatible chat model for structured data
// the marketplace API cannot provide: crafting recipes in bazaar product IDs,
// and free-form item valuations. Both calls are best-effort; callers treat
// failures as "no answer", never as fatal.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/engine"
)

const defaultModel = "gpt-4o-mini"

// Client calls the chat completions endpoint of an OpenAI-compatible API.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	model   string
}

// NewClient reads OPENAI_API_KEY, OPENAI_BASE_URL and OPENAI_MODEL from the
// environment. An empty key yields a client whose calls all fail fast, which
// downstream code already degrades around.
func NewClient() *Client {
	base := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
	if base == "" {
		base = "https://api.openai.com/v1"
	}
	model := strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if model == "" {
		model = defaultModel
	}
	return &Client{
		http:    &http.Client{Timeout: 25 * time.Second},
		baseURL: strings.TrimRight(base, "/"),
		apiKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		model:   model,
	}
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
	Temperature    float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// complete sends one chat turn and returns the raw assistant content.
func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("oracle api key is not configured")
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: &respFormat{Type: "json_object"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", strings.NewReader(string(body)))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("oracle http %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != nil && strings.TrimSpace(parsed.Error.Message) != "" {
		return "", fmt.Errorf("oracle error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("oracle returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

const recipeSystemPrompt = `You are a Hypixel SkyBlock crafting expert. Given an item name, answer with
the bazaar materials needed to craft ONE of it, as JSON:
{"ingredients":[{"product_id":"ENCHANTED_DIAMOND","quantity":32}]}
product_id must be an exact bazaar product ID in upper snake case. If the item
cannot be crafted purely from bazaar materials, answer {"ingredients":[]}.`

// InferRecipe asks the model for a bazaar-material recipe.
// Implements engine.RecipeOracle. Unparseable or malformed answers surface as
// errors; the pipeline treats them like any other oracle failure.
func (c *Client) InferRecipe(ctx context.Context, itemName string) ([]engine.Ingredient, error) {
	content, err := c.complete(ctx, recipeSystemPrompt, itemName)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Ingredients []engine.Ingredient `json:"ingredients"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("parse recipe: %w", err)
	}
	for _, ing := range parsed.Ingredients {
		if strings.TrimSpace(ing.ProductID) == "" || ing.Quantity <= 0 {
			return nil, fmt.Errorf("parse recipe: malformed ingredient %+v", ing)
		}
	}
	return parsed.Ingredients, nil
}

const valueSystemPrompt = `You are a Hypixel SkyBlock item appraiser. Given an item's name, lore, rarity
tier and current asking price, estimate its realistic market value in coins.
Answer as JSON:
{"estimated_value":0,"profit_after_tax":0,"rationale":"one short sentence"}`

// InferValue asks the model to appraise one listing.
// Implements engine.ValuationOracle.
func (c *Client) InferValue(ctx context.Context, name, lore, tier string, currentPrice float64) (engine.Valuation, error) {
	user := fmt.Sprintf("Item: %s\nRarity: %s\nAsking price: %.0f coins\nLore:\n%s", name, tier, currentPrice, lore)
	content, err := c.complete(ctx, valueSystemPrompt, user)
	if err != nil {
		return engine.Valuation{}, err
	}

	var v engine.Valuation
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return engine.Valuation{}, fmt.Errorf("parse valuation: %w", err)
	}
	return v, nil
}
