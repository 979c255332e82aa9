// Package http_request sends a single HTTP request and prints the response.
package http_request

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// client is shared by all requests to reuse TCP connections.
var client = &http.Client{Timeout: 30 * time.Second}

// Input defines the arguments of the request command.
type Input struct {
	URL     string
	Method  string
	Headers http.Header
	Body    string
}

// InputFromCall reads the parsed arguments. Headers are `Name: value`.
func InputFromCall(call *command.Call) (*Input, error) {
	in := &Input{
		URL:     call.String("url"),
		Method:  http.MethodGet,
		Headers: make(http.Header),
		Body:    call.String("body"),
	}
	if m, ok := call.Member("method"); ok {
		in.Method = m.Value
	}
	for _, h := range call.Strings("header") {
		name, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid header %q: expected 'Name: value'", h)
		}
		in.Headers.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return in, nil
}

// OnRunHttpRequest prints the response status line followed by the body.
// Non-2xx responses are printed and reported as an error.
func OnRunHttpRequest(ctx context.Context, call *command.Call) error {
	input, err := InputFromCall(call)
	if err != nil {
		return err
	}
	logger := ctxlog.FromContext(ctx).With("module", "http_request")
	logger.Debug("Making HTTP request", "method", input.Method, "url", input.URL)

	var body io.Reader
	if input.Body != "" {
		body = strings.NewReader(input.Body)
	}
	req, err := http.NewRequestWithContext(ctx, input.Method, input.URL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = input.Headers

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("Received HTTP response", "status", resp.Status)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	call.Println(resp.Status)
	if len(bodyBytes) > 0 {
		call.Printf("%s\n", bodyBytes)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("request failed with status: %s", resp.Status)
	}
	return nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler("OnRunHttpRequest", OnRunHttpRequest)
}
