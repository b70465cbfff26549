// Package store is the HTTP client for the external entity store. The core
// holds no persistence of its own: entities live behind this API, and every
// payload read from it is healed through the validation engine before anyone
// else sees it.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chronicler-app/chronicler/internal/model"
	"github.com/chronicler-app/chronicler/internal/validate"
)

// collections maps kinds to their REST collection names.
var collections = map[model.Kind]string{
	model.KindRule:      "rules",
	model.KindObjective: "objectives",
	model.KindPoint:     "points",
	model.KindSegment:   "segments",
	model.KindArc:       "arcs",
	model.KindItem:      "items",
	model.KindCharacter: "characters",
	model.KindLocation:  "locations",
	model.KindCampaign:  "campaigns",
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ErrNotFound reports a missing entity; weak-reference resolution treats it
// as an ordinary outcome, not a failure.
var ErrNotFound = fmt.Errorf("store: entity not found")

// Campaign fetches and validates the root aggregate.
func (c *Client) Campaign(ctx context.Context, id model.Identifier) (*model.Campaign, error) {
	id, err := model.Narrow(id, model.KindCampaign)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, model.KindCampaign, id.Numeric)
	if err != nil {
		return nil, err
	}
	return validate.Campaign(body)
}

// Load fetches any entity by identifier, healed through validation. The
// returned value's concrete type follows the identifier's kind.
func (c *Client) Load(ctx context.Context, id model.Identifier) (any, error) {
	kind, ok := id.Kind()
	if !ok {
		return nil, ErrNotFound
	}
	body, err := c.get(ctx, kind, id.Numeric)
	if err != nil {
		return nil, err
	}
	return validate.Validate(kind, body)
}

// Save writes an entity back in the same shape it was read. The entity must
// already be validated; the store enforces numeric uniqueness, not us.
func (c *Client) Save(ctx context.Context, id model.Identifier, entity any) error {
	kind, ok := id.Kind()
	if !ok {
		return fmt.Errorf("store: cannot save under unresolved identifier %s", id)
	}
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", id, err)
	}

	url := fmt.Sprintf("%s/%s/%d", c.baseURL, collections[kind], id.Numeric)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("store: save %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("store: save %s: unexpected status %d", id, resp.StatusCode)
	}
	return nil
}

// Delete removes an entity. Referrers holding its identifier keep working:
// their weak references simply resolve to not-found afterwards.
func (c *Client) Delete(ctx context.Context, id model.Identifier) error {
	kind, ok := id.Kind()
	if !ok {
		return fmt.Errorf("store: cannot delete unresolved identifier %s", id)
	}

	url := fmt.Sprintf("%s/%s/%d", c.baseURL, collections[kind], id.Numeric)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("store: delete %s: unexpected status %d", id, resp.StatusCode)
	}
}

func (c *Client) get(ctx context.Context, kind model.Kind, numeric int) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/%s/%d", c.baseURL, collections[kind], numeric)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store: get %s/%d: %w", collections[kind], numeric, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store: get %s/%d: unexpected status %d", collections[kind], numeric, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("store: read body: %w", err)
	}
	return json.RawMessage(body), nil
}
