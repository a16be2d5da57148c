// Package shopify reads product titles and tags from the Shopify admin REST API.
package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"prodnames/internal/config"
	"prodnames/internal/model"
	"prodnames/internal/observability"
)

// PageLimit is the per-call cap of the products endpoint.
const PageLimit = 250

var ErrNotConfigured = errors.New("shopify store or access token not configured")

type Client struct {
	// Store is the shop host (shop.myshopify.com). A value with an explicit
	// scheme is used as the base URL as is.
	Store      string
	Token      string
	APIVersion string
	MaxPages   int
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		Store:      cfg.ShopifyStore,
		Token:      cfg.ShopifyToken,
		APIVersion: cfg.ShopifyAPIVersion,
		MaxPages:   cfg.ShopifyMaxPages,
		HTTPClient: &http.Client{Timeout: cfg.ShopifyTimeout},
	}
}

func (c *Client) Configured() bool {
	return c.Store != "" && c.Token != ""
}

// Products fetches the catalog, following the Link header pagination for at
// most MaxPages pages.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(PageLimit))
	q.Set("fields", "title,tags")

	var all []model.Product
	err := c.observe("products", func() error {
		nextURL, err := c.productsURL(q)
		if err != nil {
			return err
		}

		maxPages := max(c.MaxPages, 1)
		for page := 1; nextURL != "" && page <= maxPages; page++ {
			products, next, err := c.fetchPage(ctx, nextURL)
			if err != nil {
				return err
			}
			all = append(all, products...)
			nextURL = next
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithField("products", len(all)).Debug("shopify catalog fetched")
	return all, nil
}

// ProductsByTitle returns the products whose title matches title on the
// remote side.
func (c *Client) ProductsByTitle(ctx context.Context, title string) ([]model.Product, error) {
	q := url.Values{}
	q.Set("limit", "1")
	q.Set("fields", "title,tags")
	q.Set("title", title)

	var products []model.Product
	err := c.observe("products_by_title", func() error {
		u, err := c.productsURL(q)
		if err != nil {
			return err
		}
		products, _, err = c.fetchPage(ctx, u)
		return err
	})
	return products, err
}

func (c *Client) observe(operation string, fn func() error) error {
	err := fn()
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrNotConfigured):
		outcome = "not_configured"
	default:
		outcome = "error"
	}
	observability.ShopifyRequestsTotal.WithLabelValues(operation, outcome).Inc()
	return err
}

func (c *Client) productsURL(q url.Values) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	base := c.Store
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	version := c.APIVersion
	if version == "" {
		version = config.DefaultAPIVersion
	}

	return fmt.Sprintf("%s/admin/api/%s/products.json?%s", strings.TrimRight(base, "/"), version, q.Encode()), nil
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) ([]model.Product, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request for %s: %w", pageURL, err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var result productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, "", fmt.Errorf("failed to decode response from %s: %w", pageURL, err)
	}

	if result.Products == nil {
		return nil, "", fmt.Errorf("failed to decode response from %s: %w", pageURL, errMissingProducts)
	}

	return *result.Products, nextLink(resp.Header.Get("Link")), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

// nextLink extracts the rel="next" target from a Link header:
// <https://shop/admin/api/v/products.json?page_info=x>; rel="next"
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		segments := strings.Split(part, ";")
		if len(segments) < 2 {
			continue
		}
		for _, attr := range segments[1:] {
			if strings.TrimSpace(attr) != `rel="next"` {
				continue
			}
			target := strings.TrimSpace(segments[0])
			return strings.TrimSuffix(strings.TrimPrefix(target, "<"), ">")
		}
	}
	return ""
}
