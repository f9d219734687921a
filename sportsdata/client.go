// Package sportsdata exposes the operations of the OpenLigaDB sports data web
// service as plain method calls.
//
// Example (all matches of round 14 of the 2010 Bundesliga season):
//
//	c, err := sportsdata.New()
//	if err != nil {
//		return err
//	}
//	matches, err := c.MatchesByGroupLeagueSeason(ctx, 14, "bl1", "2010")
//	for _, m := range matches {
//		fmt.Printf("%s vs. %s\n", m.Get("nameTeam1"), m.Get("nameTeam2"))
//	}
package sportsdata

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mauv0809/ligadb/internal/soap"
)

// DefaultWSDLURL is the service description the client binds to.
const DefaultWSDLURL = "http://www.openligadb.de/Webservices/Sportsdata.asmx?WSDL"

// Client is the OpenLigaDB facade. It owns one transport, created in New and
// reused for every call. Concurrent use is as safe as the transport; the
// default SOAP transport is safe for concurrent use.
type Client struct {
	transport Transport
}

// TransportFactory builds the transport for a service description URL.
type TransportFactory func(ctx context.Context, wsdlURL string) (Transport, error)

type options struct {
	wsdlURL    string
	httpClient *http.Client
	observer   soap.Observer
	endpoint   string
	transport  Transport
	factory    TransportFactory
}

// Option configures a Client.
type Option func(*options)

// WithWSDLURL replaces DefaultWSDLURL.
func WithWSDLURL(url string) Option {
	return func(o *options) {
		o.wsdlURL = url
	}
}

// WithHTTPClient sets the HTTP client of the default transport. Timeouts
// belong here; the facade sets none.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithEndpoint overrides the service address published in the description.
func WithEndpoint(url string) Option {
	return func(o *options) {
		o.endpoint = url
	}
}

// WithObserver reports every remote call of the default transport.
func WithObserver(obs soap.Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithTransport uses t as is. No service description is fetched.
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithTransportFactory replaces the constructor of the default transport.
func WithTransportFactory(f TransportFactory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// New returns a Client bound to the service. It fails when the service
// description cannot be fetched or parsed; no partially usable Client is
// ever returned.
func New(opts ...Option) (*Client, error) {
	o := options{
		wsdlURL:    DefaultWSDLURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.transport != nil {
		return &Client{transport: o.transport}, nil
	}

	factory := o.factory
	if factory == nil {
		factory = o.soapTransport
	}
	t, err := factory(context.Background(), o.wsdlURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create sportsdata client: %w", err)
	}
	return &Client{transport: t}, nil
}

func (o *options) soapTransport(ctx context.Context, wsdlURL string) (Transport, error) {
	soapOpts := []soap.Option{soap.WithHTTPClient(o.httpClient)}
	if o.endpoint != "" {
		soapOpts = append(soapOpts, soap.WithEndpoint(o.endpoint))
	}
	if o.observer != nil {
		soapOpts = append(soapOpts, soap.WithObserver(o.observer))
	}
	c, err := soap.NewClient(ctx, wsdlURL, soapOpts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Ensure Client implements the Service interface.
var _ Service = (*Client)(nil)
