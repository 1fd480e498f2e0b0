// Package health polls the API's aggregate health endpoint and turns
// each cycle into a full replacement report. Poll failures are never
// errors to the caller; they become reports with an error status so the
// dashboard always shows something current.
package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/qri-io/jsonschema"
	"github.com/rs/zerolog"

	"github.com/stackpad-dev/stackpad/core/stack"
)

// unreachableMessage is the fixed diagnostic shown when a poll cycle
// fails for any reason (transport, status, or body shape).
const unreachableMessage = "API unreachable"

// maxBodySize caps how much of a response we read. Health payloads are
// tiny; anything bigger is malformed.
const maxBodySize = 1 << 20

// reportSchema is the accepted shape of the health endpoint body. Any
// payload that doesn't validate is treated as a parse failure.
const reportSchema = `{
	"type": "object",
	"required": ["status", "timestamp"],
	"properties": {
		"status": {"type": "string"},
		"timestamp": {"type": "string"},
		"services": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		},
		"error": {"type": "string"}
	}
}`

type Client struct {
	url    string
	http   *http.Client
	schema *jsonschema.Schema
	log    zerolog.Logger
}

func NewClient(url string, log zerolog.Logger) (*Client, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(reportSchema), rs); err != nil {
		return nil, fmt.Errorf("invalid report schema: %w", err)
	}
	return &Client{
		url:    url,
		http:   http.DefaultClient,
		schema: rs,
		log:    log,
	}, nil
}

// Fetch performs one poll cycle. It always returns a complete report:
// on any failure the report carries an error status, the fixed
// diagnostic, and the current time, so stale data from the previous
// cycle never survives a failed poll.
func (c *Client) Fetch(ctx context.Context) stack.Report {
	report, err := c.fetch(ctx)
	if err != nil {
		c.log.Debug().Err(err).Msg("health poll failed")
		return stack.Report{
			Status:    stack.StatusError,
			Error:     unreachableMessage,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
	}
	return report
}

func (c *Client) fetch(ctx context.Context) (stack.Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return stack.Report{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return stack.Report{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return stack.Report{}, fmt.Errorf("health endpoint returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return stack.Report{}, err
	}

	keyErrs, err := c.schema.ValidateBytes(ctx, body)
	if err != nil {
		return stack.Report{}, fmt.Errorf("validating health payload: %w", err)
	}
	if len(keyErrs) != 0 {
		return stack.Report{}, keyError(keyErrs)
	}

	var report stack.Report
	if err := json.Unmarshal(body, &report); err != nil {
		return stack.Report{}, err
	}
	return report, nil
}

func keyError(errs []jsonschema.KeyError) error {
	s := strings.Builder{}
	for _, e := range errs {
		s.WriteString(fmt.Sprintf("%s\n", e.Error()))
	}
	return errors.New(s.String())
}
