// Package client is the data layer used by the UI: thin typed wrappers
// around the REST API plus a read cache that is invalidated on every
// write. All aggregation over the fetched data lives in package analytics.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Techlead-ANKAN/WeightTracker/models"
)

const (
	keyFoods  = "foods"
	keyWeight = "weight"
	keyLog    = "daily-log:"
	keyRange  = "daily-log-range:"
)

// APIError carries the status and {"error": ...} message of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
	cache   *cache
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   http.DefaultClient,
		cache:   newCache(),
	}
}

// SetToken installs a session token for the admin catalog calls.
func (c *Client) SetToken(token string) { c.token = token }

// Login exchanges the account password for a session token and keeps it
// on the client.
func (c *Client) Login(ctx context.Context, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{"password": password}, &out); err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

// FetchFoods returns the grouped catalog, cached until a catalog write.
// Cached reads hand out copies so callers cannot mutate the cache.
func (c *Client) FetchFoods(ctx context.Context) (*models.GroupedFoods, error) {
	if v, ok := c.cache.get(keyFoods); ok {
		return copyGroupedFoods(v.(*models.GroupedFoods)), nil
	}
	out := &models.GroupedFoods{}
	if err := c.do(ctx, http.MethodGet, "/api/foods", nil, out); err != nil {
		return nil, err
	}
	c.cache.set(keyFoods, out)
	return copyGroupedFoods(out), nil
}

// FetchDailyLog returns the resolved log for one date, cached per date.
func (c *Client) FetchDailyLog(ctx context.Context, date string) (*models.ResolvedDailyLog, error) {
	key := keyLog + date
	if v, ok := c.cache.get(key); ok {
		log := copyResolvedLog(*v.(*models.ResolvedDailyLog))
		return &log, nil
	}
	out := &models.ResolvedDailyLog{}
	if err := c.do(ctx, http.MethodGet, "/api/daily-log/"+url.PathEscape(date), nil, out); err != nil {
		return nil, err
	}
	c.cache.set(key, out)
	log := copyResolvedLog(*out)
	return &log, nil
}

// FetchDailyLogsRange returns resolved logs in [start, end] ascending.
func (c *Client) FetchDailyLogsRange(ctx context.Context, start, end string) ([]models.ResolvedDailyLog, error) {
	key := keyRange + start + ":" + end
	if v, ok := c.cache.get(key); ok {
		return copyResolvedLogs(v.([]models.ResolvedDailyLog)), nil
	}
	out := []models.ResolvedDailyLog{}
	path := fmt.Sprintf("/api/daily-log/range?start=%s&end=%s", url.QueryEscape(start), url.QueryEscape(end))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	c.cache.set(key, out)
	return copyResolvedLogs(out), nil
}

// FetchWeightLogs returns every weight entry, newest first.
func (c *Client) FetchWeightLogs(ctx context.Context) ([]models.WeightLog, error) {
	if v, ok := c.cache.get(keyWeight); ok {
		return append([]models.WeightLog(nil), v.([]models.WeightLog)...), nil
	}
	out := []models.WeightLog{}
	if err := c.do(ctx, http.MethodGet, "/api/weight", nil, &out); err != nil {
		return nil, err
	}
	c.cache.set(keyWeight, out)
	return append([]models.WeightLog(nil), out...), nil
}

// SaveDailyLog upserts one date's meal lists and drops every cached log
// and range so subsequent reads refetch.
func (c *Client) SaveDailyLog(ctx context.Context, date string, breakfast, lunch, dinner []string) (*models.ResolvedDailyLog, error) {
	body := map[string]any{"date": date, "breakfast": breakfast, "lunch": lunch, "dinner": dinner}
	out := &models.ResolvedDailyLog{}
	if err := c.do(ctx, http.MethodPost, "/api/daily-log", body, out); err != nil {
		return nil, err
	}
	c.cache.invalidatePrefix(keyLog, keyRange)
	return out, nil
}

// SaveWeightLog upserts one date's weight and invalidates the weight cache.
func (c *Client) SaveWeightLog(ctx context.Context, date string, weight float64) (*models.WeightLog, error) {
	out := &models.WeightLog{}
	if err := c.do(ctx, http.MethodPost, "/api/weight", map[string]any{"date": date, "weight": weight}, out); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyWeight)
	return out, nil
}

// CreateFood adds a catalog item (admin). Catalog writes also drop cached
// logs since resolution depends on the catalog.
func (c *Client) CreateFood(ctx context.Context, item models.FoodItem) (*models.FoodItem, error) {
	out := &models.FoodItem{}
	if err := c.do(ctx, http.MethodPost, "/api/foods", item, out); err != nil {
		return nil, err
	}
	c.invalidateCatalog()
	return out, nil
}

// UpdateFood replaces the mutable fields of a catalog item (admin).
func (c *Client) UpdateFood(ctx context.Context, id string, item models.FoodItem) (*models.FoodItem, error) {
	out := &models.FoodItem{}
	if err := c.do(ctx, http.MethodPut, "/api/foods/"+url.PathEscape(id), item, out); err != nil {
		return nil, err
	}
	c.invalidateCatalog()
	return out, nil
}

// DeleteFood removes a catalog item (admin) and returns it.
func (c *Client) DeleteFood(ctx context.Context, id string) (*models.FoodItem, error) {
	var out struct {
		Message string          `json:"message"`
		Food    models.FoodItem `json:"food"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/foods/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	c.invalidateCatalog()
	return &out.Food, nil
}

func (c *Client) invalidateCatalog() {
	c.cache.invalidate(keyFoods)
	c.cache.invalidatePrefix(keyLog, keyRange)
}

func copyGroupedFoods(g *models.GroupedFoods) *models.GroupedFoods {
	return &models.GroupedFoods{
		Breakfast: append([]models.FoodItem(nil), g.Breakfast...),
		Lunch:     append([]models.FoodItem(nil), g.Lunch...),
		Dinner:    append([]models.FoodItem(nil), g.Dinner...),
	}
}

func copyResolvedLog(l models.ResolvedDailyLog) models.ResolvedDailyLog {
	l.Breakfast = append([]models.FoodItem(nil), l.Breakfast...)
	l.Lunch = append([]models.FoodItem(nil), l.Lunch...)
	l.Dinner = append([]models.FoodItem(nil), l.Dinner...)
	return l
}

func copyResolvedLogs(logs []models.ResolvedDailyLog) []models.ResolvedDailyLog {
	out := make([]models.ResolvedDailyLog, len(logs))
	for i, l := range logs {
		out[i] = copyResolvedLog(l)
	}
	return out
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
