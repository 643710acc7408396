package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/Veraticus/finance-tracker/internal/common"
	"github.com/Veraticus/finance-tracker/internal/model"
	"github.com/Veraticus/finance-tracker/internal/ofx"
)

// importStatements parses the configured statements, if any, and returns
// them oldest first for seeding a store.
func importStatements(ctx context.Context, paths []string, progressOut io.Writer) ([]model.Transaction, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	common.LogInfo("Importing statements", common.Fields{"file_count": len(paths)})

	txns, err := ofx.ImportFiles(ctx, paths, progressOut)
	if err != nil {
		common.LogError(err, "Statement import failed", common.Fields{"file_count": len(paths)})
		return nil, err
	}

	if len(txns) == 0 {
		slog.Warn("No transactions found in any statement")
	}
	return txns, nil
}
