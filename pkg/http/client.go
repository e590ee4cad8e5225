package http

import (
	"net"
	"net/http"
	"time"
)

// TransportFunc decorates an http.RoundTripper, for example with auth
// headers or request logging.
type TransportFunc func(http.RoundTripper) http.RoundTripper

const (
	defaultTimeout             = 30 * time.Second
	defaultKeepAlive           = 90 * time.Second
	defaultTLSHandshakeTimeout = 10 * time.Second
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
)

type clientConfig struct {
	dialTimeout           time.Duration
	requestTimeout        time.Duration
	keepAlive             time.Duration
	responseHeaderTimeout time.Duration
	idleConnTimeout       time.Duration
	maxIdleConnsPerHost   int
	transports            []TransportFunc
}

func newClient(opts ...HttpOpts) *http.Client {
	cfg := &clientConfig{
		dialTimeout:           defaultTimeout,
		requestTimeout:        defaultTimeout,
		keepAlive:             defaultKeepAlive,
		responseHeaderTimeout: defaultTimeout,
		idleConnTimeout:       defaultKeepAlive,
		maxIdleConnsPerHost:   defaultMaxIdleConnsPerHost,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	dialer := net.Dialer{
		Timeout:   cfg.dialTimeout,
		KeepAlive: cfg.keepAlive,
	}

	var transport http.RoundTripper = &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          defaultMaxIdleConns,
		MaxIdleConnsPerHost:   cfg.maxIdleConnsPerHost,
		TLSHandshakeTimeout:   defaultTLSHandshakeTimeout,
		ResponseHeaderTimeout: cfg.responseHeaderTimeout,
		IdleConnTimeout:       cfg.idleConnTimeout,
	}

	// Transports wrap outside-in: the last registered decorator sees the
	// request first.
	for _, wrap := range cfg.transports {
		transport = wrap(transport)
	}

	return &http.Client{
		Timeout:   cfg.requestTimeout,
		Transport: transport,
	}
}
