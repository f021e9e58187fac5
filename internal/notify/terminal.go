package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Terminal renders notifications as styled lines on a writer. It is the
// CLI stand-in for the extension's desktop notifications and popup button.
type Terminal struct {
	w io.Writer
}

// NewTerminal creates a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) Notify(kind Kind, message string) {
	switch kind {
	case SyncComplete:
		_, _ = fmt.Fprintln(t.w, okStyle.Render("✓ "+message))
	case AuthFailed:
		_, _ = fmt.Fprintln(t.w, errStyle.Render("✗ "+message))
	default:
		_, _ = fmt.Fprintln(t.w, warnStyle.Render("! "+message))
	}
}

func (t *Terminal) SetSyncControl(state ControlState) {
	if state == ControlNeedsToken {
		_, _ = fmt.Fprintln(t.w, warnStyle.Render("Set a valid token with `repojump config set token <token>`."))
	}
}
