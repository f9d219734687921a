package soap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	gowsdl "github.com/hooklift/gowsdl/soap"
)

var (
	// ErrUnknownOperation is returned when the WSDL does not define the operation.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrArgumentCount is returned when a call does not supply exactly the
	// parameters the operation declares.
	ErrArgumentCount = errors.New("wrong number of arguments")
)

// Client calls the operations of one SOAP service. It is not mutated after
// NewClient returns and is safe for concurrent use.
type Client struct {
	definition *Definition
	endpoint   string
	caller     *gowsdl.Client
	observer   Observer
}

type options struct {
	httpClient *http.Client
	endpoint   string
	headers    map[string]string
	observer   Observer
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient sets the HTTP client used for the WSDL fetch and every call.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithEndpoint overrides the service address published in the WSDL.
func WithEndpoint(url string) Option {
	return func(o *options) {
		o.endpoint = url
	}
}

// WithHTTPHeaders sets headers sent with every call.
func WithHTTPHeaders(headers map[string]string) Option {
	return func(o *options) {
		o.headers = headers
	}
}

// WithObserver reports every call to o.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// NewClient fetches and parses the WSDL at wsdlURL and returns a client bound
// to the SOAP 1.1 port it describes.
func NewClient(ctx context.Context, wsdlURL string, opts ...Option) (*Client, error) {
	o := options{httpClient: &http.Client{Timeout: 30 * time.Second}}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := fetch(ctx, o.httpClient, wsdlURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wsdl %s: %w", wsdlURL, err)
	}
	def, err := ParseWSDL(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse wsdl %s: %w", wsdlURL, err)
	}

	endpoint := def.Endpoint
	if o.endpoint != "" {
		endpoint = o.endpoint
	}
	log.Info("Loaded service description", "service", def.Service, "endpoint", endpoint, "operations", len(def.operations))

	callerOpts := []gowsdl.Option{gowsdl.WithHTTPClient(o.httpClient)}
	if len(o.headers) > 0 {
		callerOpts = append(callerOpts, gowsdl.WithHTTPHeaders(o.headers))
	}
	return &Client{
		definition: def,
		endpoint:   endpoint,
		caller:     gowsdl.NewClient(endpoint, callerOpts...),
		observer:   o.observer,
	}, nil
}

// Definition returns the parsed service description.
func (c *Client) Definition() *Definition {
	return c.definition
}

// Call invokes operation with args bound positionally to its parameters and
// returns the result element of the response wrapper. The result is nil when
// the service omitted it.
func (c *Client) Call(ctx context.Context, operation string, args ...any) (*Element, error) {
	op, ok := c.definition.Operation(operation)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, operation)
	}
	req, err := newRequest(c.definition.TargetNamespace, op, args)
	if err != nil {
		return nil, err
	}

	log.Debug("Calling SOAP operation", "operation", operation, "action", op.SOAPAction, "args", req.values)
	var resp Element
	start := time.Now()
	err = c.caller.CallContext(ctx, op.SOAPAction, req, &resp)
	if c.observer != nil {
		c.observer.ObserveCall(operation, time.Since(start), err)
	}
	if err != nil {
		log.Error("SOAP call failed", "operation", operation, "endpoint", c.endpoint, "error", err)
		return nil, fmt.Errorf("soap call %s: %w", operation, err)
	}
	log.Debug("SOAP call succeeded", "operation", operation, "duration_ms", time.Since(start).Milliseconds())

	if len(resp.Children) == 0 {
		return nil, nil
	}
	return resp.Children[0], nil
}

func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
