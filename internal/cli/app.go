package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophnet/internal/config"
	"github.com/dmitrijs2005/gophnet/internal/graph"
	"github.com/dmitrijs2005/gophnet/internal/logging"
	"github.com/dmitrijs2005/gophnet/internal/storage"
)

// App is one interactive session over a network.
type App struct {
	config *config.Config
	repo   storage.Repository
	log    logging.Logger
	store  *graph.Store
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires a session reading commands from in and printing to out.
func NewApp(c *config.Config, repo storage.Repository, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		repo:   repo,
		log:    log.With("component", "cli"),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run loads the network, runs the menu until the user exits, and saves
// the network back.
func (a *App) Run(ctx context.Context) error {
	store, err := a.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}
	a.store = store
	a.log.Debug(ctx, "session started", "users", store.Len())

	runMenu(ctx, a, a.reader, a.out)

	if err := a.repo.Save(ctx, a.store); err != nil {
		a.log.Error(ctx, "saving network failed", "error", err)
		return fmt.Errorf("save network: %w", err)
	}
	return nil
}

// Store exposes the session's network.
func (a *App) Store() *graph.Store {
	return a.store
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
