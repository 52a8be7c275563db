package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-scene-builder/pkg/core"
)

// consoleBufferSize bounds the messages kept per build
const consoleBufferSize = 256

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning"
}

// warningMarkers flag build messages that report a fallback or a dropped value
var warningMarkers = []string{"Unknown", "not enabled", "ignoring", "dropped", "disabled"}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	buildID     string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific build
func NewWebLogger(buildID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		buildID:     buildID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Printf("[%s] %s", wl.buildID, message)

	// Send to web console if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			Message:   message,
			Timestamp: time.Now(),
			Level:     messageLevel(message),
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}

func messageLevel(message string) string {
	for _, marker := range warningMarkers {
		if strings.Contains(message, marker) {
			return "warning"
		}
	}
	return "info"
}

// drainConsole collects the messages already queued on consoleChan
func drainConsole(consoleChan chan ConsoleMessage) []ConsoleMessage {
	messages := []ConsoleMessage{}
	for {
		select {
		case msg := <-consoleChan:
			messages = append(messages, msg)
		default:
			return messages
		}
	}
}
