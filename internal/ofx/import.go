package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/Veraticus/finance-tracker/internal/common"
	"github.com/Veraticus/finance-tracker/internal/model"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// maxParallelFiles bounds how many statements are parsed at once.
const maxParallelFiles = 4

// ImportFiles parses every statement in paths concurrently and returns the
// combined transactions ordered oldest first, so that appending them to a
// store leaves the newest on top. Progress is drawn to progressOut when it
// is not nil. The first failing file aborts the import.
func ImportFiles(ctx context.Context, paths []string, progressOut io.Writer) ([]model.Transaction, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	bar := newProgressBar(len(paths), progressOut)
	parser := NewParser()
	results := make([][]model.Transaction, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFiles)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			txns, err := parser.parsePath(ctx, path)
			if err != nil {
				return common.NewUserError(
					fmt.Sprintf("could not import %s", filepath.Base(path)),
					fmt.Errorf("%w: %w", common.ErrImportFailed, err))
			}
			results[i] = txns

			if bar != nil {
				if err := bar.Add(1); err != nil {
					slog.Warn("Failed to update progress bar", "error", err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.Transaction
	for _, txns := range results {
		all = append(all, txns...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	slog.Info("Imported OFX statements",
		"files", len(paths),
		"transactions", len(all))

	return all, nil
}

func (p *Parser) parsePath(ctx context.Context, path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("Failed to close statement", "file", path, "error", cerr)
		}
	}()

	txns, err := p.ParseFile(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		slog.Warn("No transactions found in file", "file", filepath.Base(path))
	}
	return txns, nil
}

func newProgressBar(total int, out io.Writer) *progressbar.ProgressBar {
	if out == nil {
		return nil
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][bold]Importing statements...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(out); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
