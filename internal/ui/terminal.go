package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/patrickprogramme/subshare/internal/clipboard"
	"github.com/patrickprogramme/subshare/internal/sharelink"
)

// maxPromptAttempts limite les saisies invalides avant abandon.
const maxPromptAttempts = 5

var ErrNoInput = errors.New("aucun lien saisi")

type terminalUI struct {
	reader   *bufio.Reader
	out      io.Writer
	errOut   io.Writer
	readClip func() (string, error)
}

func NewTerminal() Interface {
	return NewTerminalWith(os.Stdin, os.Stdout, os.Stderr, clipboard.ReadAll)
}

// NewTerminalWith permet d'injecter les flux et la lecture du presse-papier (tests).
// readClip peut être nil : le presse-papier est alors ignoré.
func NewTerminalWith(in io.Reader, out, errOut io.Writer, readClip func() (string, error)) Interface {
	return &terminalUI{
		reader:   bufio.NewReader(in),
		out:      out,
		errOut:   errOut,
		readClip: readClip,
	}
}

func (t *terminalUI) GetSharedLink(ctx context.Context) (string, error) {
	// 1) clipboard
	if t.readClip != nil {
		if clip, err := t.readClip(); err == nil && sharelink.LooksLikeLink(clip) {
			t.PrintInfo(ctx, fmt.Sprintf("Utilisation du lien depuis le presse-papier: %s", preview(clip, 60)))
			return strings.TrimSpace(clip), nil
		}
	}
	// 2) prompt
	for i := 0; i < maxPromptAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(t.out, "Collez le lien de partage des sous-titres: ")
		input, err := t.reader.ReadString('\n')
		link := strings.TrimSpace(input)
		if sharelink.LooksLikeLink(link) {
			return link, nil
		}
		if err != nil {
			// EOF : plus rien à lire
			return "", fmt.Errorf("%w: %v", ErrNoInput, err)
		}
		fmt.Fprintln(t.out, "❌ Lien invalide. Essayez à nouveau.")
	}
	return "", ErrNoInput
}

func (t *terminalUI) WaitForExit(ctx context.Context) error {
	fmt.Fprintln(t.out, "\n\nAppuyez sur Entrée ou Ctrl+C pour quitter.")

	done := make(chan struct{})
	go func() {
		_, _ = t.reader.ReadString('\n')
		close(done)
	}()

	select {
	case <-ctx.Done(): // Ctrl+C : le contexte racine est annulé par signal.NotifyContext
		return nil
	case <-done:
		return nil
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Fprintln(t.out, s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.errOut, s)
}

// preview tronque s à n runes pour l'affichage.
func preview(s string, n int) string {
	s = strings.TrimSpace(s)
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n]) + "…"
}
