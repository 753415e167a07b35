package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/GroupIronmen_Go/internal/collectionlog"
	"github.com/osse101/GroupIronmen_Go/internal/validation"
)

// LoadCollectionLogInfo loads the collection log reference and validates it
// against the embedded schema. The server refuses to start without it.
func LoadCollectionLogInfo(path string) (*collectionlog.Info, error) {
	slog.Info(LogMsgLoadingCollectionLog, "path", path)

	info, err := collectionlog.Load(path, validation.NewSchemaValidator())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCollection, err)
	}

	slog.Info(LogMsgCollectionLogLoaded,
		"tabs", len(info.Tabs()),
		"pages", info.PageCount())
	return info, nil
}
