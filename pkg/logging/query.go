package logging

import "fmt"

// QueryLogger records query lifecycle events to the query structured log.
// Each event carries a type field (query_received, query_response,
// query_error) that the pattern analyzer classifies on.
type QueryLogger struct {
	logger *Logger
}

// NewQueryLogger creates a QueryLogger appending to the file at path.
func NewQueryLogger(path string) (*QueryLogger, error) {
	logger, err := New(path, "query_logger")
	if err != nil {
		return nil, err
	}
	return &QueryLogger{logger: logger}, nil
}

// Close closes the underlying file.
func (q *QueryLogger) Close() error {
	return q.logger.Close()
}

// LogQuery records an incoming query.
func (q *QueryLogger) LogQuery(query, userID string, metadata map[string]any) {
	q.logger.Info(
		fmt.Sprintf("Query received: %s", truncate(query, 100)),
		map[string]any{
			"query":    query,
			"user_id":  userID,
			"type":     "query_received",
			"metadata": orEmpty(metadata),
		})
}

// LogResponse records a successful query response with its processing time
// in seconds.
func (q *QueryLogger) LogResponse(query, response string, processingTime float64, userID string, metadata map[string]any) {
	q.logger.Info(
		fmt.Sprintf("Query processed in %.2fs: %s", processingTime, truncate(query, 50)),
		map[string]any{
			"query":           query,
			"response":        response,
			"processing_time": processingTime,
			"user_id":         userID,
			"type":            "query_response",
			"metadata":        orEmpty(metadata),
		})
}

// LogError records a failed query.
func (q *QueryLogger) LogError(query, errMsg, userID string, metadata map[string]any) {
	q.logger.Error(
		fmt.Sprintf("Query failed: %s - Error: %s", truncate(query, 50), errMsg),
		map[string]any{
			"query":    query,
			"error":    errMsg,
			"user_id":  userID,
			"type":     "query_error",
			"metadata": orEmpty(metadata),
		})
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
