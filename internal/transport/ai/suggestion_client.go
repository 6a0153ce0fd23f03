package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

const suggestionSystemPrompt = `You are an expert travel agent. A user is asking for suggestions for their holiday.

Based on the user's location and desired activity type, provide a list of 10-12 specific and interesting suggestions. For each suggestion, you MUST provide a search query that can be used to find a photo on a stock photo website.

Also, identify the country of the user's search location.

For the 'travel' activity type, suggest major travel hubs like airports, train stations, and bus terminals.

Respond with a single JSON object of this shape and nothing else:
{
  "searchCountry": "country of the search location, e.g. France for Paris",
  "suggestions": [
    {
      "name": "official name of the place",
      "description": "short, compelling description",
      "address": "full, formatted address",
      "country": "country it is in",
      "website": "official website URL, omit if unknown",
      "latitude": 0.0,
      "longitude": 0.0,
      "imageQuery": "2-4 word stock photo search query"
    }
  ]
}`

type SuggestionClient struct {
	client *openai.Client
	model  string
}

var _ ports.SuggestionProvider = (*SuggestionClient)(nil)

func NewSuggestionClient(client *openai.Client, model string) *SuggestionClient {
	if strings.TrimSpace(model) == "" {
		model = DefaultChatModel
	}
	return &SuggestionClient{client: client, model: model}
}

func (c *SuggestionClient) Suggest(ctx context.Context, location string, category domain.Category) (*domain.SuggestionList, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: suggestionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Location: %s\nActivity Type: %s", location, category.Label())},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature:    0.7,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no suggestions returned")
	}
	return parseSuggestions(resp.Choices[0].Message.Content)
}

type suggestionPayload struct {
	SearchCountry string `json:"searchCountry"`
	Suggestions   []struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Address     string   `json:"address"`
		Country     string   `json:"country"`
		Website     string   `json:"website"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
		ImageQuery  string   `json:"imageQuery"`
	} `json:"suggestions"`
}

func parseSuggestions(content string) (*domain.SuggestionList, error) {
	var payload suggestionPayload
	if err := json.Unmarshal([]byte(cleanJSON(content)), &payload); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}

	list := &domain.SuggestionList{Suggestions: make([]domain.Suggestion, 0, len(payload.Suggestions))}
	if country := strings.TrimSpace(payload.SearchCountry); country != "" {
		list.SearchCountry = &country
	}
	for _, s := range payload.Suggestions {
		if s.Latitude == nil || s.Longitude == nil {
			continue
		}
		list.Suggestions = append(list.Suggestions, domain.Suggestion{
			Name:        strings.TrimSpace(s.Name),
			Description: strings.TrimSpace(s.Description),
			Address:     strings.TrimSpace(s.Address),
			Country:     strings.TrimSpace(s.Country),
			Coordinate:  domain.Coordinate{Latitude: *s.Latitude, Longitude: *s.Longitude},
			Website:     optional(s.Website),
			ImageQuery:  optional(s.ImageQuery),
		})
	}
	return list, nil
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
