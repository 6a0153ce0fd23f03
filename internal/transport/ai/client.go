package ai

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultChatModel  = openai.GPT4oMini
	DefaultImageModel = openai.CreateImageModelDallE3
)

type Config struct {
	APIKey     string
	BaseURL    string
	ChatModel  string
	ImageModel string
	Timeout    time.Duration
}

// NewOpenAIClient builds a client for the OpenAI API or any compatible
// endpoint when BaseURL is set.
func NewOpenAIClient(cfg Config) *openai.Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		oc.BaseURL = strings.TrimRight(base, "/")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	oc.HTTPClient = &http.Client{Timeout: timeout}
	return openai.NewClientWithConfig(oc)
}

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?(.*?)```")

// cleanJSON strips markdown code fences models sometimes wrap JSON in.
func cleanJSON(content string) string {
	return strings.TrimSpace(fencedJSON.ReplaceAllString(content, "$1"))
}
