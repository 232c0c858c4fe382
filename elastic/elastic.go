// Package elastic stores books as documents in an Elasticsearch index.
// Document IDs are assigned by Elasticsearch.
package elastic

import (
	"context"
	"fmt"

	"github.com/olivere/elastic/v7"
)

// DefaultIndex is the index books are stored in.
const DefaultIndex = "books"

// mapping keeps genre as a keyword so it can be filtered exactly.
const mapping = `{
	"mappings": {
		"properties": {
			"title":      {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
			"author":     {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
			"genre":      {"type": "keyword"},
			"rating":     {"type": "keyword"},
			"created_at": {"type": "date"},
			"updated_at": {"type": "date"}
		}
	}
}`

// Client wraps an Elasticsearch client bound to one index.
type Client struct {
	client *elastic.Client
	url    string
	index  string
}

// NewClient creates a new Client for the cluster at url. An empty index
// selects DefaultIndex.
func NewClient(url, index string) *Client {
	if index == "" {
		index = DefaultIndex
	}
	return &Client{url: url, index: index}
}

// Open connects to the cluster and creates the index if it does not exist.
func (c *Client) Open(ctx context.Context) error {
	client, err := elastic.NewClient(
		elastic.SetURL(c.url),
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
	)
	if err != nil {
		return fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	c.client = client

	exists, err := client.IndexExists(c.index).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check index %q: %w", c.index, err)
	}
	if exists {
		return nil
	}

	if _, err := client.CreateIndex(c.index).BodyString(mapping).Do(ctx); err != nil {
		return fmt.Errorf("failed to create index %q: %w", c.index, err)
	}
	return nil
}

// Close stops the client's background tasks.
func (c *Client) Close() error {
	if c.client != nil {
		c.client.Stop()
	}
	return nil
}
