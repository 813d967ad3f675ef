package config

import (
	"flag"
	"os"

	"github.com/cbdowney09-alt/WorkProof/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   storage driver: sqlite or postgres (default from Config)
//	-d string   database DSN: file path for sqlite, URL for postgres
//	-t string   directory for imported timecard photos
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver (sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.DataDir, "t", cfg.DataDir, "directory for timecard photos")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
