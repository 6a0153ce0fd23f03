package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

const DefaultBaseURL = "https://freegeoip.app/json/"

// Client looks up IP addresses against a freegeoip compatible JSON API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.Geolocator = (*Client)(nil)

func NewClient(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{baseURL: baseURL, httpClient: &http.Client{Timeout: 5 * time.Second}}
}

type lookupResponse struct {
	IP          string   `json:"ip"`
	City        string   `json:"city"`
	CountryName string   `json:"country_name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Locate resolves ip. Loopback and private addresses are sent as an empty
// path so the service geolocates the server's public address instead.
func (c *Client) Locate(ctx context.Context, ip string) (*domain.IPLocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+publicIP(ip), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("geoip lookup: status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err != nil {
		return nil, fmt.Errorf("geoip lookup: %w", err)
	}

	loc := &domain.IPLocation{
		IP:      body.IP,
		City:    strings.TrimSpace(body.City),
		Country: strings.TrimSpace(body.CountryName),
	}
	if body.Latitude != nil && body.Longitude != nil {
		if coord, err := domain.NewCoordinate(*body.Latitude, *body.Longitude); err == nil {
			loc.Coordinate = &coord
		}
	}
	return loc, nil
}

func publicIP(ip string) string {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return ""
	}
	return parsed.String()
}
