package services

import (
	"context"
	"sync"
)

// fakeCompleter replays scripted responses and records every call, in order.
type fakeCompleter struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     []completionCall
}

type completionCall struct {
	Content      string
	Instructions string
	Temperature  float32
}

func (c *fakeCompleter) Complete(ctx context.Context, content, instructions string, temperature float32) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, completionCall{Content: content, Instructions: instructions, Temperature: temperature})
	if c.err != nil {
		return "", c.err
	}
	if len(c.responses) == 0 {
		return "", nil
	}
	next := c.responses[0]
	c.responses = c.responses[1:]
	return next, nil
}

func (c *fakeCompleter) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// fakeExtractor returns a fixed extraction result.
type fakeExtractor struct {
	text string
	err  error
}

func (e *fakeExtractor) Extract(ctx context.Context, fileURI, mimeType string) (string, error) {
	return e.text, e.err
}
