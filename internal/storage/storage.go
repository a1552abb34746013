// Package storage opens the Row Store selected by configuration.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/shopledger/internal/config"
	"github.com/MrJamesThe3rd/shopledger/internal/database"
	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
	"github.com/MrJamesThe3rd/shopledger/internal/ledger/sheets"
	"github.com/MrJamesThe3rd/shopledger/internal/ledger/store"
)

// Open returns the configured store and a function releasing its resources.
func Open(ctx context.Context, cfg *config.Config) (ledger.RowStore, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverSheets:
		s, err := sheets.New(ctx, sheets.Config{
			SpreadsheetID:   cfg.Sheets.SpreadsheetID,
			SheetName:       cfg.Sheets.SheetName,
			CredentialsFile: cfg.Sheets.CredentialsFile,
		})
		if err != nil {
			return nil, nil, err
		}

		slog.Info("using google sheets store", "sheet", cfg.Sheets.SheetName)

		return s, func() {}, nil

	case config.DriverPostgres:
		db, err := database.New(ctx, cfg.ConnectionString())
		if err != nil {
			return nil, nil, err
		}

		s := store.New(db)
		if err := s.Init(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		slog.Info("using postgres store", "host", cfg.DB.Host, "database", cfg.DB.Name)

		return s, func() { db.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
