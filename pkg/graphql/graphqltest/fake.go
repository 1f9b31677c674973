// Package graphqltest provides an in-memory graphql.Client for tests.
package graphqltest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"isp-dashboard/pkg/graphql"
)

// Client answers operations from canned JSON data objects and records every call.
type Client struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     []graphql.Request
}

// New creates an empty Client.
func New() *Client {
	return &Client{
		responses: make(map[string]string),
		errs:      make(map[string]error),
	}
}

// Respond sets the data object returned for operation.
func (c *Client) Respond(operation, data string) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses[operation] = data
	return c
}

// Fail makes operation return err.
func (c *Client) Fail(operation string, err error) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs[operation] = err
	return c
}

func (c *Client) Run(_ context.Context, req *graphql.Request, resp any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	vars := make(map[string]any, len(req.Variables))
	for k, v := range req.Variables {
		vars[k] = v
	}
	c.calls = append(c.calls, graphql.Request{Operation: req.Operation, Query: req.Query, Variables: vars})

	if err, ok := c.errs[req.Operation]; ok {
		return &graphql.Error{Operation: req.Operation, Message: err.Error()}
	}
	data, ok := c.responses[req.Operation]
	if !ok {
		return fmt.Errorf("graphqltest: no response for %s", req.Operation)
	}
	return json.Unmarshal([]byte(data), resp)
}

// Calls returns every recorded request in order.
func (c *Client) Calls() []graphql.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]graphql.Request(nil), c.calls...)
}

// CallsTo returns the recorded requests for operation.
func (c *Client) CallsTo(operation string) []graphql.Request {
	var out []graphql.Request
	for _, call := range c.Calls() {
		if call.Operation == operation {
			out = append(out, call)
		}
	}
	return out
}

// Input returns the "input" variable of req re-encoded as a generic map,
// so tests can assert which keys were sent.
func Input(req graphql.Request) map[string]any {
	raw, err := json.Marshal(req.Variables["input"])
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
