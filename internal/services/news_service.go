package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

const newsAPIBaseURL = "https://newsapi.org/v2"

// NewsService passes headline and search queries through to NewsAPI.
type NewsService struct {
	apiKey  string
	baseURL string
}

func NewNewsService(apiKey string) *NewsService {
	return &NewsService{apiKey: apiKey, baseURL: newsAPIBaseURL}
}

func (s *NewsService) GetTopHeadlines(ctx context.Context, category string, page int) (json.RawMessage, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("country", "us")
	if category != "" {
		q.Set("category", category)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", "10")
	q.Set("apiKey", s.apiKey)

	return fetchJSON(ctx, s.baseURL+"/top-headlines", q)
}

func (s *NewsService) SearchNews(ctx context.Context, query string, page int) (json.RawMessage, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", "10")
	q.Set("sortBy", "publishedAt")
	q.Set("apiKey", s.apiKey)

	return fetchJSON(ctx, s.baseURL+"/everything", q)
}
