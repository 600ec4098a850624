package tempo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// createWorklogQuery is the single mutation this client issues. The server
// aliases the created worklog as "result" so the response shape stays fixed.
const createWorklogQuery = `mutation CreateWorklog($input: CreateWorklogInput!) {
  result: createWorklog(input: $input) {
    id
    __typename
  }
}`

const operationName = "CreateWorklog"

// Client talks to the worklog GraphQL API.
type Client struct {
	endpoint   string
	tokens     TokenSource
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new worklog API client. Every call is bounded by a
// 30s timeout so a hung request fails the day instead of stalling the batch.
func NewClient(endpoint string, tokens TokenSource, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		tokens:   tokens,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// CreateWorklog issues one CreateWorklog mutation and returns the created
// worklog. Failures are classified: *TransportError for network failures and
// non-2xx statuses, *RemoteError when the response carries an errors list.
// The call is not idempotent; resubmitting the same input creates a
// duplicate worklog on the server.
func (c *Client) CreateWorklog(ctx context.Context, input WorklogInput) (*Worklog, error) {
	reqBody := graphqlRequest{
		OperationName: operationName,
		Query:         createWorklogQuery,
		Variables: map[string]interface{}{
			"input": input,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth token: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var gqlResp graphqlResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	if len(gqlResp.Errors) > 0 {
		return nil, &RemoteError{Errors: gqlResp.Errors}
	}

	if gqlResp.Data == nil || gqlResp.Data.Result == nil {
		return nil, &RemoteError{Errors: []GraphQLError{{Message: "response has neither result nor errors"}}}
	}

	worklog := gqlResp.Data.Result

	c.logger.Info("Worklog created",
		zap.String("id", worklog.ID),
		zap.String("type", worklog.TypeTag),
		zap.String("started", input.Started),
		zap.String("time_spent", input.TimeSpentString),
		zap.String("ticket", input.Ticket))

	return worklog, nil
}
