// ABOUTME: OS clipboard adapters for PNG image data.
// ABOUTME: Probes for wl-clipboard (Wayland) or xclip (X11) and shells out to them.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

var (
	// ErrNoImage indicates the clipboard holds no image data.
	ErrNoImage = errors.New("no image data found in clipboard")
	// ErrUnavailable indicates no supported clipboard utility is installed.
	ErrUnavailable = errors.New("no clipboard utility found (install wl-clipboard or xclip)")
)

// Clipboard reads and writes PNG bytes on the OS clipboard.
type Clipboard interface {
	ReadImage() ([]byte, error)
	WriteImage(png []byte) error
}

// Detect probes for an available clipboard backend. Wayland wins when both
// wl-clipboard and xclip are installed.
func Detect() (Clipboard, error) {
	if _, err := exec.LookPath("wl-paste"); err == nil {
		return waylandClipboard{}, nil
	}
	if _, err := exec.LookPath("xclip"); err == nil {
		return x11Clipboard{}, nil
	}
	return nil, ErrUnavailable
}

// waylandClipboard shells out to the wl-clipboard copy/paste pair.
type waylandClipboard struct{}

func (waylandClipboard) ReadImage() ([]byte, error) {
	out, err := exec.Command("wl-paste", "--type", "image/png").Output()
	if err != nil || len(out) == 0 {
		return nil, fmt.Errorf("%w (Wayland)", ErrNoImage)
	}
	return out, nil
}

func (waylandClipboard) WriteImage(png []byte) error {
	cmd := exec.Command("wl-copy", "--type", "image/png")
	cmd.Stdin = bytes.NewReader(png)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("wl-copy failed: %w", err)
	}
	return nil
}

// x11Clipboard shells out to xclip for both directions.
type x11Clipboard struct{}

func (x11Clipboard) ReadImage() ([]byte, error) {
	out, err := exec.Command("xclip", "-selection", "clipboard", "-t", "image/png", "-o").Output()
	if err != nil || len(out) == 0 {
		return nil, fmt.Errorf("%w (X11)", ErrNoImage)
	}
	return out, nil
}

func (x11Clipboard) WriteImage(png []byte) error {
	cmd := exec.Command("xclip", "-selection", "clipboard", "-t", "image/png")
	cmd.Stdin = bytes.NewReader(png)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("xclip failed: %w", err)
	}
	return nil
}
