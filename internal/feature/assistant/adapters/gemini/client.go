// Package gemini はGoogle Gemini APIを使用したテキスト生成クライアントを提供します。
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"jobassist_backend/internal/feature/assistant/usecase"
)

// Client はGoogle Gemini APIへの単発テキスト生成呼び出しを行います。
// モデルの選択は呼び出し側のGenerationParamsに委ねます。
type Client struct {
	client *genai.Client
}

// ClientがTextGeneratorを実装していることをコンパイル時に検証します。
var _ usecase.TextGenerator = (*Client)(nil)

// NewClient はAPIキーを使用してClientの新しいインスタンスを生成します。
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{client: client}, nil
}

// Generate はプロンプトを送信し、最初の補完テキストを返します。
// タイムアウトは注入されたctxとHTTPクライアントのデフォルトに委ねます。
func (c *Client) Generate(ctx context.Context, prompt string, params usecase.GenerationParams) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(params.Temperature),
		MaxOutputTokens: params.MaxOutputTokens,
	}

	resp, err := c.client.Models.GenerateContent(ctx, params.Model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini API returned no text content")
	}
	return text, nil
}
