package validation

import (
	"strconv"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
)

// CollectionLogReference is the read-only view of the collection log
// schema needed to check a submission.
type CollectionLogReference interface {
	HasPage(page string) bool
	HasItem(page string, itemID int32) bool
	CompletionLabelCount(page string) int
}

// ValidateCollectionLog rejects any page or item the reference does not know.
func ValidateCollectionLog(ref CollectionLogReference, entries []domain.CollectionLogEntry) error {
	for _, entry := range entries {
		if !ref.HasPage(entry.PageName) {
			return &domain.ValidationError{Field: domain.FieldCollectionLog, Key: entry.PageName}
		}
		for itemID := range entry.Items {
			if !ref.HasItem(entry.PageName, itemID) {
				return &domain.ValidationError{
					Field: domain.FieldCollectionLog,
					Key:   entry.PageName + "/" + strconv.Itoa(int(itemID)),
				}
			}
		}
		if labels := ref.CompletionLabelCount(entry.PageName); len(entry.CompletionCounts) > labels {
			return &domain.ValidationError{
				Field:  domain.FieldCollectionLog,
				Key:    entry.PageName,
				Reason: "has " + strconv.Itoa(len(entry.CompletionCounts)) + " completion counts, page allows " + strconv.Itoa(labels),
			}
		}
	}
	return nil
}
