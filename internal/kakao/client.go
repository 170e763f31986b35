// Package kakao реализует клиент Kakao Local REST API: поиск мест по
// ключевому слову и определение почтового индекса по адресу.
package kakao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrQueryTooShort возвращается, если поисковый запрос короче двух символов.
var ErrQueryTooShort = errors.New("query must be at least 2 characters")

// Client клиент Kakao Local API.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент Kakao Local API.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     "https://dapi.kakao.com",
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	u := c.apiURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)
	return req, nil
}

// SearchKeyword ищет места по ключевому слову. Запрос должен содержать
// не менее двух символов.
func (c *Client) SearchKeyword(ctx context.Context, keyword string) ([]Place, error) {
	const op = "kakao.SearchKeyword"
	if len([]rune(keyword)) < 2 {
		return nil, fmt.Errorf("%s: %w", op, ErrQueryTooShort)
	}

	query := url.Values{}
	query.Set("query", keyword)
	query.Set("size", "10")
	req, err := c.newRequest(ctx, "/v2/local/search/keyword.json", query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	var result keywordResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result.Documents, nil
}

// SearchZipCode определяет почтовый индекс по адресу. Если индекс не найден,
// возвращается пустая строка без ошибки.
func (c *Client) SearchZipCode(ctx context.Context, address string) (string, error) {
	const op = "kakao.SearchZipCode"

	query := url.Values{}
	query.Set("query", address)
	req, err := c.newRequest(ctx, "/v2/local/search/address.json", query)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	var result addressResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if len(result.Documents) == 0 {
		return "", nil
	}
	doc := result.Documents[0]
	if doc.RoadAddress != nil && doc.RoadAddress.ZoneNo != "" {
		return doc.RoadAddress.ZoneNo, nil
	}
	if doc.Address != nil {
		return doc.Address.ZipCode, nil
	}
	return "", nil
}
