// Package collections fetches the collection forest from the Zotero API and
// resolves every node to its breadcrumb path.
package collections

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/MunoMono/reference-library/internal/domain"
)

const defaultBaseURL = "https://api.zotero.org"

// pageDelay spaces paginated requests to stay friendly with the API.
const pageDelay = 100 * time.Millisecond

// Client talks to the Zotero web API for one library.
type Client struct {
	baseURL     string
	apiKey      string
	libraryType string // "user" or "groups"
	libraryID   string
	http        *http.Client
	log         *zap.Logger
}

// NewClient validates the library coordinates and returns a ready client.
// The API key is required; Zotero rejects unauthenticated collection reads.
func NewClient(apiKey, libraryType, libraryID string, log *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("zotero API key not set (export ZOTERO_API_KEY)")
	}
	libraryType = strings.ToLower(strings.TrimSpace(libraryType))
	if libraryType != "user" && libraryType != "groups" {
		return nil, fmt.Errorf("library type must be 'user' or 'groups', got %q", libraryType)
	}
	if strings.TrimSpace(libraryID) == "" {
		return nil, fmt.Errorf("library ID not set")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:     defaultBaseURL,
		apiKey:      apiKey,
		libraryType: libraryType,
		libraryID:   libraryID,
		http:        &http.Client{Timeout: 30 * time.Second},
		log:         log,
	}, nil
}

// apiCollection mirrors the wire shape of one collection object.
// parentCollection is false for roots and a key string otherwise.
type apiCollection struct {
	Key  string `json:"key"`
	Data struct {
		Name             string          `json:"name"`
		ParentCollection json.RawMessage `json:"parentCollection"`
	} `json:"data"`
}

// FetchAll retrieves every collection in the library, following pagination
// until the feed is exhausted. The result is a complete snapshot; partial
// pages never leak out on error.
func (c *Client) FetchAll(ctx context.Context) ([]domain.CollectionNode, error) {
	url := fmt.Sprintf("%s/%ss/%s/collections?limit=100", c.baseURL, c.libraryType, c.libraryID)

	var nodes []domain.CollectionNode
	for page := 1; url != ""; page++ {
		batch, next, err := c.fetchPage(ctx, url)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, batch...)
		c.log.Debug("fetched collections page",
			zap.Int("page", page), zap.Int("count", len(batch)))

		url = next
		if url != "" {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(pageDelay):
			}
		}
	}
	return nodes, nil
}

func (c *Client) fetchPage(ctx context.Context, url string) ([]domain.CollectionNode, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Zotero-API-Key", c.apiKey)
	req.Header.Set("Zotero-API-Version", "3")
	req.Header.Set("User-Agent", "reflib/1.0 (reference-library)")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch collections: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, "", fmt.Errorf("HTTP 403 from Zotero API: check API key scopes and library type/ID")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}

	var raw []apiCollection
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, "", fmt.Errorf("decode collections: %w", err)
	}

	nodes := make([]domain.CollectionNode, 0, len(raw))
	for _, col := range raw {
		node := domain.CollectionNode{Key: col.Key, Name: col.Data.Name}
		var parent string
		// Roots carry `false`; only a string value is a parent link.
		if json.Unmarshal(col.Data.ParentCollection, &parent) == nil && parent != "" {
			node.ParentKey = &parent
		}
		nodes = append(nodes, node)
	}
	return nodes, nextLink(resp.Header.Get("Link")), nil
}

// nextLink extracts the rel="next" URL from a Link header, or "".
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		start := strings.IndexByte(part, '<')
		end := strings.IndexByte(part, '>')
		if start >= 0 && end > start {
			return part[start+1 : end]
		}
	}
	return ""
}
