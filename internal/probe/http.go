package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Ayush-07-Mishra/Vasu-Vue/pkg/logger"
)

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// predictionResult pairs a session with the category the backend returned.
type predictionResult struct {
	session  Session
	category string
	err      error
}

// runPredictions posts every session's signal concurrently and collects the
// returned categories.
func runPredictions(ctx context.Context, config *Config, sessions []Session, stats *Stats) ([]predictionResult, error) {
	logger.Get().Info(ctx, "submitting prediction requests",
		logger.Int("sessions", len(sessions)),
		logger.Int("workers", config.Workers),
	)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/api/predict"

	var sent int64

	sessionChan := make(chan Session, config.Workers*WorkerChannelMultiplier)
	resultChan := make(chan predictionResult, len(sessions))
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range sessionChan {
				select {
				case <-ctx.Done():
					return
				default:
					category, err := predictOne(ctx, client, url, s)
					atomic.AddInt64(&sent, 1)
					resultChan <- predictionResult{session: s, category: category, err: err}
				}
			}
		}()
	}

	go func() {
		defer close(sessionChan)
		for _, s := range sessions {
			select {
			case <-ctx.Done():
				return
			case sessionChan <- s:
			}
		}
	}()

	wg.Wait()
	close(resultChan)

	results := make([]predictionResult, 0, len(sessions))
	for r := range resultChan {
		results = append(results, r)
	}

	stats.PredictionsSent = int(atomic.LoadInt64(&sent))
	return results, nil
}

// predictOne posts a single signal and returns the predicted category.
func predictOne(ctx context.Context, client *HTTPClient, url string, s Session) (string, error) {
	resp, err := client.Post(ctx, url, PredictRequest{Signal: s.Signal})
	if err != nil {
		return "", fmt.Errorf("prediction request failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return "", fmt.Errorf("failed to read prediction response: %w", err)
	}

	if resp.StatusCode != StatusOK {
		return "", fmt.Errorf("prediction returned status %d: %s", resp.StatusCode, string(body))
	}

	var pred Prediction
	if err := json.Unmarshal(body, &pred); err != nil {
		return "", fmt.Errorf("failed to parse prediction response: %w", err)
	}
	if !pred.Success {
		return "", fmt.Errorf("prediction response not successful")
	}
	return pred.Category, nil
}

// runExports exports every session and counts acknowledgments.
func runExports(ctx context.Context, config *Config, sessions []Session, stats *Stats) error {
	logger.Get().Info(ctx, "exporting sessions", logger.Int("sessions", len(sessions)))

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/api/export"

	var sent, acked int64

	sessionChan := make(chan Session, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range sessionChan {
				select {
				case <-ctx.Done():
					return
				default:
					atomic.AddInt64(&sent, 1)
					if exportOne(ctx, client, url, s) {
						atomic.AddInt64(&acked, 1)
					}
				}
			}
		}()
	}

	go func() {
		defer close(sessionChan)
		for _, s := range sessions {
			select {
			case <-ctx.Done():
				return
			case sessionChan <- s:
			}
		}
	}()

	wg.Wait()

	stats.ExportsSent = int(atomic.LoadInt64(&sent))
	stats.ExportsAcked = int(atomic.LoadInt64(&acked))

	logger.Get().Info(ctx, "export submission completed",
		logger.Int("sent", stats.ExportsSent),
		logger.Int("acked", stats.ExportsAcked),
	)
	return nil
}

// exportOne exports a single session and reports whether it was acknowledged.
func exportOne(ctx context.Context, client *HTTPClient, url string, s Session) bool {
	samples := make([]SamplePair, len(s.Signal))
	for i, v := range s.Signal {
		samples[i] = SamplePair{V: v}
	}

	resp, err := client.Post(ctx, url, ExportRequest{SessionID: s.SessionID, Samples: samples})
	if err != nil {
		return false
	}

	body, err := readResponseBody(resp)
	if err != nil || resp.StatusCode != StatusOK {
		return false
	}

	var ack ExportAck
	if err := json.Unmarshal(body, &ack); err != nil {
		return false
	}
	return ack.Success
}

// fetchSessions retrieves the archived session records.
func fetchSessions(ctx context.Context, config *Config, limit int) ([]SessionRecord, error) {
	client := newHTTPClient(config.Timeout)
	url := fmt.Sprintf("%s/api/sessions?limit=%d", config.BaseURL, limit)

	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("sessions request failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return nil, fmt.Errorf("sessions returned status %d", resp.StatusCode)
	}

	var records []SessionRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to parse sessions response: %w", err)
	}
	return records, nil
}
