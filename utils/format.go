package utils

import (
	"fmt"
	"time"
)

// MessageType selects the color of a console message.
type MessageType int

// Console message kinds.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI escape sequences of the message colors.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

var msgColors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	StatusMessage:  StatusColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
}

// DecorateText wraps s in the color of msgType and resets the terminal color afterwards.
// Unknown message types are returned unchanged.
func DecorateText(s string, msgType MessageType) string {
	c, ok := msgColors[msgType]
	if !ok {
		return s
	}
	return c + s + DefaultColor
}

// FormatTime prints the duration of a run, e.g. "0.42s" or "1m 3.20s".
func FormatTime(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	minutes := d / time.Minute
	return fmt.Sprintf("%dm %.2fs", int64(minutes), (d - minutes*time.Minute).Seconds())
}
