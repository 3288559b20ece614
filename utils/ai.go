package utils

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const copywritingSystemPrompt = "You write short marketing copy for the public page of a legal professional. " +
	"Plain language, warm but professional tone, no legal advice, no guarantees of outcome, " +
	"at most two short paragraphs. Answer in the same language as the request."

// GenerateText asks the AI provider for copy based on the given prompt.
// The result may legitimately be empty (the provider sometimes returns no
// choices), callers must tolerate that without failing their own flow.
func GenerateText(ctx context.Context, prompt string) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is required in environment variables")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := openai.NewClient(apiKey)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: copywritingSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: 400,
	})
	if err != nil {
		return "", fmt.Errorf("error calling the text generation API: %v", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
