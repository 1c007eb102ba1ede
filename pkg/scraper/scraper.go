// Package scraper provides functionality to fetch the pro settings page
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/apex/log"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	// DefaultURL is the Valorant pro settings list
	DefaultURL = "https://prosettings.net/lists/valorant/"
	// DefaultUserAgent mimics a desktop Chrome so the page is served normally
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/121.0.0.0 Safari/537.36"
	// DefaultTimeout bounds the whole request
	DefaultTimeout = 30 * time.Second
)

var tracer = otel.Tracer("edpi-scraper/pkg/scraper")

// StatusError is returned when the server answers with anything but 200 OK
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-200 status code: %d %s", e.Code, e.Status)
}

// Options configures a Client
type Options struct {
	UserAgent string
	Timeout   time.Duration
}

// Client downloads pages with browser-like headers
type Client struct {
	http *resty.Client
}

// NewClient creates a Client, filling unset options with defaults
func NewClient(opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	return &Client{http: client}
}

// FetchURL downloads the page at url and returns its body
func (c *Client) FetchURL(ctx context.Context, url string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "FetchURL")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	log.WithField("url", url).Debug("fetching url")

	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, errors.Wrap(err, "error fetching URL")
	}

	log.WithFields(log.Fields{
		"status":       res.StatusCode(),
		"content_type": res.Header().Get("Content-Type"),
		"bytes":        len(res.Body()),
	}).Debug("received response")

	if res.StatusCode() != http.StatusOK {
		err := &StatusError{Code: res.StatusCode(), Status: res.Status()}
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	return res.Body(), nil
}

// ReadFile loads a page that was saved earlier
func ReadFile(path string) ([]byte, error) {
	log.WithField("path", path).Debug("reading saved page")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading saved page")
	}
	return content, nil
}
