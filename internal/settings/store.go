// Package settings owns the typed configuration document and its persistence.
// The document lives as one JSON object under a single well-known key in the
// database; loading shallow-merges the stored fields over hard-coded
// defaults, and writes are debounced so rapid edits coalesce into one durable
// write.
package settings

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/lwaidler/tourneyclock/internal/config"
	"github.com/lwaidler/tourneyclock/internal/models"
	"github.com/lwaidler/tourneyclock/internal/util"
)

// Sink is the slice of the database the store needs.
type Sink interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Store holds the current settings and persists changes through the sink.
type Store struct {
	mu       sync.Mutex
	current  models.Settings
	sink     Sink
	debounce time.Duration
	timer    *time.Timer
}

// Load builds a store from the persisted document, falling back to defaults
// per field for anything missing and wholesale for malformed data. Load never
// fails; a broken document just means defaults.
func Load(ctx context.Context, sink Sink) *Store {
	s := &Store{
		current:  Defaults(),
		sink:     sink,
		debounce: config.SaveDebounce,
	}
	raw, ok := sink.GetSetting(ctx, config.SettingsKey)
	if !ok {
		return s
	}
	merged := Defaults()
	if err := json.Unmarshal([]byte(raw), &merged); err != nil {
		util.LogError("load settings", err)
		return s
	}
	s.current = merged
	return s
}

// Current returns a copy of the settings document. The schedule slice is
// copied too, so callers cannot mutate store state through it.
func (s *Store) Current() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySettings(s.current)
}

// Update applies fn to the document and schedules a debounced save.
func (s *Store) Update(fn func(*models.Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.current)
	s.scheduleSaveLocked()
}

func (s *Store) SetTournamentName(name string) {
	s.Update(func(c *models.Settings) { c.TournamentName = name })
}

func (s *Store) SetHeaderVisible(v bool) {
	s.Update(func(c *models.Settings) { c.HeaderVisible = v })
}

func (s *Store) SetScheduleVisible(v bool) {
	s.Update(func(c *models.Settings) { c.ScheduleVisible = v })
}

func (s *Store) SetCurrentGame(n int) {
	s.Update(func(c *models.Settings) { c.CurrentGame = n })
}

func (s *Store) SetScheduleItems(items []models.ScheduleItem) {
	s.Update(func(c *models.Settings) { c.ScheduleItems = append([]models.ScheduleItem(nil), items...) })
}

func (s *Store) SetTheme(name string) {
	s.Update(func(c *models.Settings) { c.Theme = name })
}

// SetCountdownPrefill stores the last-used start parameters so the settings
// modal reopens with them.
func (s *Store) SetCountdownPrefill(mode string, hours, minutes int, targetTime string) {
	s.Update(func(c *models.Settings) {
		c.CountdownMode = mode
		c.CountdownHours = hours
		c.CountdownMinutes = minutes
		c.CountdownTargetTime = targetTime
	})
}

func (s *Store) SetProgressLimit(limit models.ProgressLimit) {
	s.Update(func(c *models.Settings) {
		c.ProgressBarLimitEnabled = limit.Enabled
		c.ProgressBarLimitHours = limit.Hours
		c.ProgressBarLimitMinutes = limit.Minutes
	})
}

// Flush cancels any pending debounce and writes the document now. Call on
// shutdown.
func (s *Store) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	doc := copySettings(s.current)
	s.mu.Unlock()
	s.persist(ctx, doc)
}

// scheduleSaveLocked arms the debounce timer, superseding any pending one.
// Callers hold s.mu.
func (s *Store) scheduleSaveLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		s.timer = nil
		doc := copySettings(s.current)
		s.mu.Unlock()
		s.persist(context.Background(), doc)
	})
}

func (s *Store) persist(ctx context.Context, doc models.Settings) {
	data, err := json.Marshal(doc)
	if err != nil {
		util.LogError("encode settings", err)
		return
	}
	// Write failures are logged and dropped; persistence is never fatal.
	util.LogError("save settings", s.sink.SetSetting(ctx, config.SettingsKey, string(data)))
}

func copySettings(c models.Settings) models.Settings {
	out := c
	out.ScheduleItems = append([]models.ScheduleItem(nil), c.ScheduleItems...)
	return out
}
