package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/cbdowney09-alt/WorkProof/internal/config"
	"github.com/cbdowney09-alt/WorkProof/internal/logging"
	"github.com/cbdowney09-alt/WorkProof/internal/services"
	"github.com/cbdowney09-alt/WorkProof/internal/storage"
)

// App wires the WorkProof services to the interactive command loop.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	auth     *services.AuthService
	session  *services.Session
	registry *services.PositionRegistry
	ledger   *services.ShiftLedger
	reader   *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, manager, err := storage.Open(ctx, cfg.StorageDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := storage.NewEntityStore(db, manager, log)
	session := services.NewSession(store, log)

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		auth:     services.NewAuthService(db, manager, log),
		session:  session,
		registry: services.NewPositionRegistry(session),
		ledger:   services.NewShiftLedger(session, cfg.DataDir, log),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if user := a.session.Restore(ctx); user != nil {
		printlnFn("Welcome back,", user.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the database handle.
func (a *App) Close() {
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.User() != nil
}

func (a *App) getStatus() string {
	user := a.session.User()
	if user == nil {
		return ""
	}
	return "(" + user.Email + " " + string(a.session.Mode()) + ")"
}
