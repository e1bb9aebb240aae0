package ui

import (
	"context"
)

type Interface interface {
	// GetSharedLink renvoie un lien de partage (ou le payload seul).
	// Implémentation terminale : priorité clipboard -> prompt
	GetSharedLink(ctx context.Context) (string, error)

	// WaitForExit bloque jusqu'à Entrée ou annulation de ctx (Ctrl+C).
	WaitForExit(ctx context.Context) error

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
