package entity

import "time"

// CallbackEventType names what happened to an asynchronous upload
type CallbackEventType string

const (
	// Data is the *RFPSummary of the stored document
	CallbackEventTypeAnalysisCompleted CallbackEventType = "analysisCompleted"
	// Data is *CallbackErrorData
	CallbackEventTypeError             CallbackEventType = "error"
)

// CallbackEvent is the JSON body POSTed to an upload's callback_url
type CallbackEvent struct {
	Event     CallbackEventType `json:"event"`
	Timestamp string            `json:"timestamp"` // RFC 3339, UTC
	Data      any               `json:"data"`
}

type CallbackErrorData struct {
	Error CallbackErrorDetails `json:"error"`
}

type CallbackErrorDetails struct {
	Message string         `json:"message"`
	Details map[string]any `json:"details"` // filename and the underlying error
}

// NewAnalysisCompletedEvent reports a stored and analyzed upload
func NewAnalysisCompletedEvent(summary *RFPSummary, at time.Time) *CallbackEvent {
	return newCallbackEvent(CallbackEventTypeAnalysisCompleted, summary, at)
}

// NewErrorEvent reports an upload that could not be ingested or analyzed
func NewErrorEvent(message string, details map[string]any, at time.Time) *CallbackEvent {
	return newCallbackEvent(CallbackEventTypeError, &CallbackErrorData{
		Error: CallbackErrorDetails{Message: message, Details: details},
	}, at)
}

func newCallbackEvent(event CallbackEventType, data any, at time.Time) *CallbackEvent {
	return &CallbackEvent{
		Event:     event,
		Timestamp: at.UTC().Format(time.RFC3339),
		Data:      data,
	}
}
