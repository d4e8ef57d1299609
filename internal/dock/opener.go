package dock

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/pkg/browser"
)

func init() {
	// The browser package echoes the launcher's output, which would land on
	// top of the alt screen.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Opener performs the side effect behind a link item.
type Opener interface {
	Open(target string) error
}

// SystemOpener hands targets to the desktop's default handler.
type SystemOpener struct{}

// Open launches the platform handler for target.
func (SystemOpener) Open(target string) error {
	return browser.OpenURL(target)
}

// NopOpener logs and drops links. Remote sessions use it since the
// handler would run on the server, not the viewer's machine.
type NopOpener struct {
	Logger *log.Logger
}

// Open records the suppressed link.
func (o NopOpener) Open(target string) error {
	if o.Logger != nil {
		o.Logger.Info("link suppressed", "url", target)
	}
	return nil
}

// RecordingOpener remembers every target, for tests. Err, when set, is
// returned from each call.
type RecordingOpener struct {
	mu      sync.Mutex
	targets []string
	Err     error
}

// Open records target.
func (o *RecordingOpener) Open(target string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.targets = append(o.targets, target)
	return o.Err
}

// Targets returns what has been opened so far.
func (o *RecordingOpener) Targets() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.targets...)
}
