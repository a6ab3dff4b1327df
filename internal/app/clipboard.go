package app

import (
	"fmt"

	"golang.design/x/clipboard"
)

// Clipboard receives the rendered blocks when copying is enabled.
type Clipboard interface {
	WriteText(text []byte) error
}

// systemClipboard writes to the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteText(text []byte) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	clipboard.Write(clipboard.FmtText, text)
	return nil
}
