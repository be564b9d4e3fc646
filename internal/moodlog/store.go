package moodlog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lunarhare/mindease/internal/constants"
	"github.com/lunarhare/mindease/internal/logger"
	"github.com/lunarhare/mindease/internal/models"
	"github.com/lunarhare/mindease/internal/storage"
	"github.com/lunarhare/mindease/internal/utils"
)

// Store owns the append-only mood check-in log. Entries are persisted
// newest-first under a single record key.
type Store struct {
	provider storage.Provider
}

func NewStore(provider storage.Provider) *Store {
	return &Store{provider: provider}
}

// List returns the full log, newest first. A missing or unparseable record
// yields an empty log: corrupt storage is deliberately treated the same as
// no storage, never surfaced to the user.
func (s *Store) List() ([]models.MoodEntry, error) {
	data, ok, err := s.provider.Get(constants.MoodEntriesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}
	if !ok {
		return []models.MoodEntry{}, nil
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Debug("mood entry record unparseable, falling back to empty log", "error", err)
		return []models.MoodEntry{}, nil
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}

	return entries, nil
}

// Save prepends the entry to the persisted log. The store does not validate
// the mood value; that is the caller's concern.
func (s *Store) Save(entry models.MoodEntry) error {
	entries, err := s.List()
	if err != nil {
		return err
	}

	updated := make([]models.MoodEntry, 0, len(entries)+1)
	updated = append(updated, entry)
	updated = append(updated, entries...)

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to serialize mood entries: %w", err)
	}

	return s.provider.Put(constants.MoodEntriesKey, data)
}

// GenerateID produces an id unique with overwhelming probability by
// combining the current epoch-milliseconds with a random suffix.
func (s *Store) GenerateID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), suffix)
}

// NewEntry builds a check-in for the given mood and note, stamped now.
func (s *Store) NewEntry(mood models.Mood, note string, now time.Time) models.MoodEntry {
	return models.MoodEntry{
		ID:        s.GenerateID(),
		Mood:      mood,
		Note:      note,
		Timestamp: now.UnixMilli(),
		Date:      utils.DisplayDate(now),
	}
}
