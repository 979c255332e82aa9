// Package socketio provides a command that emits one event to a Socket.IO
// server and optionally waits for a reply event.
package socketio

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

const defaultTimeout = 10 * time.Second

// Input holds the arguments of the emit command.
type Input struct {
	URL                string
	Event              string
	Namespace          string
	OnEvent            string
	Data               map[string]any
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// opResult is a private struct to safely pass results through the done channel.
type opResult struct {
	value any
	err   error
}

// InputFromCall validates the parsed arguments. Data entries are `key=value`
// pairs; a value that is valid JSON is decoded, anything else is kept as a
// string.
func InputFromCall(call *command.Call) (*Input, error) {
	in := &Input{
		URL:                call.String("url"),
		Event:              call.String("event"),
		Namespace:          call.String("namespace"),
		OnEvent:            call.String("on_event"),
		Data:               make(map[string]any),
		Timeout:            defaultTimeout,
		InsecureSkipVerify: call.Bool("insecure"),
	}
	if in.Namespace == "" {
		in.Namespace = "/"
	}

	if raw := call.String("timeout"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid timeout %q: must be positive", raw)
		}
		in.Timeout = d
	}

	for _, pair := range call.Strings("data") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid data entry %q: expected key=value", pair)
		}
		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			in.Data[key] = decoded
		} else {
			in.Data[key] = value
		}
	}
	return in, nil
}

// OnRunSocketIOEmit connects, emits the event and, when --on-event is set,
// prints the payload of the first matching reply as JSON.
func OnRunSocketIOEmit(ctx context.Context, call *command.Call) error {
	input, err := InputFromCall(call)
	if err != nil {
		return err
	}
	parsedURL, err := url.Parse(input.URL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("failed to parse URL: %q needs a scheme and a host", input.URL)
	}

	logger := ctxlog.FromContext(ctx).With("module", "socketio", "url", input.URL, "emitEvent", input.Event, "onEvent", input.OnEvent)
	logger.Debug("Handler started")
	defer logger.Debug("Handler finished")

	var isConnected atomic.Bool
	done := make(chan opResult, 1)
	opCtx, cancel := context.WithTimeout(ctx, input.Timeout)
	defer cancel()

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		opts.SetPath(parsedURL.Path)
	}
	if input.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(input.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Debug("Successfully connected", "namespace", input.Namespace, "sid", io.Id())
		io.Emit(input.Event, input.Data)
		if input.OnEvent == "" {
			select {
			case done <- opResult{}:
			default:
			}
		}
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connection failed")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = fmt.Errorf("connection failed: %w", e)
			}
		}
		select {
		case done <- opResult{err: err}:
		default:
		}
	})

	if input.OnEvent != "" {
		io.On(types.EventName(input.OnEvent), func(data ...any) {
			var payload any
			if len(data) > 0 {
				payload = data[0]
			}
			select {
			case done <- opResult{value: payload}:
			default:
			}
		})
	}

	io.Connect()

	select {
	case <-opCtx.Done():
		if isConnected.Load() {
			return fmt.Errorf("timed out after connecting while waiting for event '%s'", input.OnEvent)
		}
		return fmt.Errorf("timed out while waiting for initial connection")
	case res := <-done:
		if res.err != nil {
			return res.err
		}
		if input.OnEvent == "" {
			call.Printf("Emitted %s\n", input.Event)
			return nil
		}
		out, err := json.Marshal(res.value)
		if err != nil {
			return fmt.Errorf("failed to encode reply: %w", err)
		}
		call.Printf("%s\n", out)
		return nil
	}
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler("OnRunSocketIOEmit", OnRunSocketIOEmit)
}
