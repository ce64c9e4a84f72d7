package systems

import (
	"fmt"
	"image/color"
)

// MessageType selects the colour a status message is drawn in
type MessageType int

const (
	// MessageTypeNormal is for routine viewer messages (gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeGeneration reports a freshly built level (gold)
	MessageTypeGeneration
	// MessageTypeAlert is for skipped overlays and other surprises (yellow)
	MessageTypeAlert
)

// ColoredMessage stores a message with its type
type ColoredMessage struct {
	Text string
	Type MessageType
}

// Color returns the draw colour for the message type
func (cm ColoredMessage) Color() color.RGBA {
	switch cm.Type {
	case MessageTypeGeneration:
		return color.RGBA{218, 165, 32, 255}
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255}
	default:
		return color.RGBA{200, 200, 200, 255}
	}
}

// MessageLog keeps the most recent status lines shown under the map
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// NewMessageLog creates a message log holding at most maxMessages lines
func NewMessageLog(maxMessages int) *MessageLog {
	return &MessageLog{MaxMessages: maxMessages}
}

// Add appends a message, dropping the oldest once full
func (ml *MessageLog) Add(msgType MessageType, format string, args ...any) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: fmt.Sprintf(format, args...), Type: msgType})

	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages returns up to n messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	n = min(n, len(ml.Messages))

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}
	return result
}
