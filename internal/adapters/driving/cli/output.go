package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/computor-cli/internal/adapters/driving/tui/styles"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// printer writes command output, styling it only on a terminal.
type printer struct {
	w      io.Writer
	styles *styles.Styles
	color  bool
}

func newPrinter(cmd *cobra.Command) *printer {
	w := cmd.OutOrStdout()
	return &printer{
		w:      w,
		styles: styles.DefaultStyles(),
		color:  isTerminal(w),
	}
}

func (p *printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p *printer) title(s string) {
	fmt.Fprintln(p.w, p.render(p.styles.Title, s))
}

func (p *printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

func (p *printer) muted(s string) {
	fmt.Fprintln(p.w, p.render(p.styles.Muted, s))
}

func (p *printer) success(s string) {
	fmt.Fprintln(p.w, p.render(p.styles.Success, s))
}

func (p *printer) failure(s string) {
	fmt.Fprintln(p.w, p.render(p.styles.Error, s))
}

func (p *printer) blank() {
	fmt.Fprintln(p.w)
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
