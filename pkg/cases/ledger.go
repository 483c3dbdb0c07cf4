// Package cases provides the moderation case ledger.
// Every moderation action (warn, mute, kick, ban, ...) is recorded as a case
// with a globally unique, monotonically increasing case ID, indexed per guild
// and per user, and persisted to a JSON file between restarts.
package cases

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/wardenlabs/warden/pkg/logger"
)

// DefaultReason is recorded when a moderator gives no reason.
const DefaultReason = "No reason provided"

// Known action types. The type field is open ended: unknown values round-trip
// through the store untouched.
const (
	TypeWarn    = "warn"
	TypeMute    = "mute"
	TypeUnmute  = "unmute"
	TypeKick    = "kick"
	TypeBan     = "ban"
	TypeUnban   = "unban"
	TypeSoftban = "softban"
)

// Record is one recorded moderation action.
type Record struct {
	CaseID       int    `json:"caseId"`
	ModeratorID  string `json:"moderatorId"`
	ModeratorTag string `json:"moderatorTag"`
	Reason       string `json:"reason"`
	Timestamp    string `json:"timestamp"`
	Type         string `json:"type"`
}

// UserRecord is a Record annotated with the user it belongs to. It is returned
// by cross-user lookups (GetByCase, GetRecent) where the caller does not
// already know the owning user.
type UserRecord struct {
	Record
	UserID string `json:"userId"`
}

// Entry is the caller-supplied portion of a new case. Reason may be empty;
// Type defaults to "warn" when unset.
type Entry struct {
	ModeratorID  string
	ModeratorTag string
	Reason       string
	Type         string
}

// Stats aggregates a guild's moderation history.
type Stats struct {
	TotalWarnings int            `json:"totalWarnings"`
	UsersWarned   int            `json:"usersWarned"`
	ByType        map[string]int `json:"byType"`
}

// ledgerFile is the on-disk layout. The key names are a compatibility
// contract with existing warning stores and must not change.
type ledgerFile struct {
	Warnings    map[string]map[string][]Record `json:"warnings"`
	CaseCounter int                            `json:"caseCounter"`
}

// Ledger is the durable store of moderation cases. It is safe for concurrent
// use; every mutating operation persists the full ledger before returning.
//
// Construct one Ledger per process and pass it to whatever command handlers
// need it. The Ledger exclusively owns its backing file.
type Ledger struct {
	mu sync.Mutex

	path        string
	warnings    map[string]map[string][]Record
	caseCounter int
}

// New creates a Ledger backed by the file at path and loads any existing
// state. A missing or corrupt store is not fatal: the ledger starts empty and
// the condition is logged.
func New(path string) *Ledger {
	l := &Ledger{
		path:     path,
		warnings: make(map[string]map[string][]Record),
	}
	l.load()
	return l
}

// load reads the backing file into memory. Never fails the caller.
func (l *Ledger) load() {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info(fmt.Sprintf("No case store at %s, starting empty", l.path), "Cases")
		} else {
			logger.Warn(fmt.Sprintf("Failed to read case store %s: %v, starting empty", l.path, err), "Cases")
		}
		return
	}

	var file ledgerFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Warn(fmt.Sprintf("Case store %s is corrupt: %v, starting empty", l.path, err), "Cases")
		return
	}

	if file.Warnings != nil {
		l.warnings = file.Warnings
	}
	l.caseCounter = file.CaseCounter
	logger.Info(fmt.Sprintf("Loaded warning records for %d guilds (case counter at %d)", len(l.warnings), l.caseCounter), "Cases")
}

// save writes the full ledger state to disk atomically: the serialized state
// goes to a temp file in the same directory which is then renamed over the
// store, so a crash mid-write never leaves a truncated file behind.
// Caller must hold l.mu.
func (l *Ledger) save() error {
	data, err := json.MarshalIndent(ledgerFile{
		Warnings:    l.warnings,
		CaseCounter: l.caseCounter,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal case store: %w", err)
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(l.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write case store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close case store: %w", err)
	}
	if err := os.Rename(tmpName, l.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace case store: %w", err)
	}
	return nil
}

// nextCaseID issues a new case ID. Issued IDs are never reused, even when the
// operation that requested one fails afterwards. Caller must hold l.mu.
func (l *Ledger) nextCaseID() int {
	l.caseCounter++
	return l.caseCounter
}

// Add records a new moderation case against a user and returns it with its
// assigned case ID. guildID and userID must be non-empty; moderator identity
// is taken from entry as supplied by the command layer.
//
// On a persistence failure the appended record is rolled back and an error is
// returned, but the consumed case ID stays burned.
func (l *Ledger) Add(guildID, userID string, entry Entry) (*Record, error) {
	if guildID == "" || userID == "" {
		return nil, fmt.Errorf("cases: guild and user IDs must be non-empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.warnings[guildID] == nil {
		l.warnings[guildID] = make(map[string][]Record)
	}

	reason := entry.Reason
	if reason == "" {
		reason = DefaultReason
	}
	actionType := entry.Type
	if actionType == "" {
		actionType = TypeWarn
	}

	record := Record{
		CaseID:       l.nextCaseID(),
		ModeratorID:  entry.ModeratorID,
		ModeratorTag: entry.ModeratorTag,
		Reason:       reason,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Type:         actionType,
	}

	l.warnings[guildID][userID] = append(l.warnings[guildID][userID], record)

	if err := l.save(); err != nil {
		// Roll back the record but keep the counter: the case ID is spent.
		users := l.warnings[guildID]
		users[userID] = users[userID][:len(users[userID])-1]
		l.pruneLocked(guildID, userID)
		logger.Error(fmt.Sprintf("Failed to persist case #%d: %v", record.CaseID, err), "Cases")
		return nil, err
	}

	logger.Info(fmt.Sprintf("Added %s case #%d to user %s in guild %s", record.Type, record.CaseID, userID, guildID), "Cases")
	return &record, nil
}

// Get returns the user's cases in the guild, oldest first. The returned slice
// is a copy and is never nil.
func (l *Ledger) Get(guildID, userID string) []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := l.warnings[guildID][userID]
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// Count returns the number of cases recorded against the user in the guild.
func (l *Ledger) Count(guildID, userID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warnings[guildID][userID])
}

// GetByCase looks up a single case by ID within a guild. Case IDs are
// globally unique, so at most one record matches. The second return value
// reports whether the case was found.
func (l *Ledger) GetByCase(guildID string, caseID int) (*UserRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for userID, records := range l.warnings[guildID] {
		for _, record := range records {
			if record.CaseID == caseID {
				return &UserRecord{Record: record, UserID: userID}, true
			}
		}
	}
	return nil, false
}

// RemoveByCase deletes the case with the given ID from the guild and reports
// whether a record was actually removed. Removing a case that does not exist
// is a no-op, not an error. On a persistence failure the deletion is rolled
// back and the error returned.
func (l *Ledger) RemoveByCase(guildID string, caseID int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for userID, records := range l.warnings[guildID] {
		for i, record := range records {
			if record.CaseID != caseID {
				continue
			}

			l.warnings[guildID][userID] = append(records[:i:i], records[i+1:]...)
			l.pruneLocked(guildID, userID)

			if err := l.save(); err != nil {
				// Restore the record at its original position.
				if l.warnings[guildID] == nil {
					l.warnings[guildID] = make(map[string][]Record)
				}
				restored := make([]Record, 0, len(records))
				restored = append(restored, records[:i]...)
				restored = append(restored, record)
				restored = append(restored, records[i+1:]...)
				l.warnings[guildID][userID] = restored
				logger.Error(fmt.Sprintf("Failed to persist removal of case #%d: %v", caseID, err), "Cases")
				return false, err
			}

			logger.Info(fmt.Sprintf("Removed case #%d from guild %s", caseID, guildID), "Cases")
			return true, nil
		}
	}
	return false, nil
}

// Clear deletes every case recorded against the user in the guild and returns
// how many were removed. On a persistence failure the records are restored
// and the error returned.
func (l *Ledger) Clear(guildID, userID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := l.warnings[guildID][userID]
	if len(records) == 0 {
		return 0, nil
	}

	delete(l.warnings[guildID], userID)
	l.pruneLocked(guildID, userID)

	if err := l.save(); err != nil {
		if l.warnings[guildID] == nil {
			l.warnings[guildID] = make(map[string][]Record)
		}
		l.warnings[guildID][userID] = records
		logger.Error(fmt.Sprintf("Failed to persist clear for user %s: %v", userID, err), "Cases")
		return 0, err
	}

	logger.Info(fmt.Sprintf("Cleared %d cases for user %s in guild %s", len(records), userID, guildID), "Cases")
	return len(records), nil
}

// GetRecent returns the guild's most recent cases across all users, newest
// first, truncated to limit.
func (l *Ledger) GetRecent(guildID string, limit int) []UserRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	all := make([]UserRecord, 0)
	for userID, records := range l.warnings[guildID] {
		for _, record := range records {
			all = append(all, UserRecord{Record: record, UserID: userID})
		}
	}

	sort.Slice(all, func(i, j int) bool {
		ti, _ := time.Parse(time.RFC3339, all[i].Timestamp)
		tj, _ := time.Parse(time.RFC3339, all[j].Timestamp)
		if ti.Equal(tj) {
			return all[i].CaseID > all[j].CaseID
		}
		return ti.After(tj)
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}

// GetStats aggregates the guild's moderation history: total case count,
// number of distinct users with at least one case, and counts per action type.
func (l *Ledger) GetStats(guildID string) Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := Stats{ByType: make(map[string]int)}
	for _, records := range l.warnings[guildID] {
		if len(records) == 0 {
			continue
		}
		stats.UsersWarned++
		for _, record := range records {
			stats.TotalWarnings++
			stats.ByType[record.Type]++
		}
	}
	return stats
}

// CaseCounter returns the last issued case ID.
func (l *Ledger) CaseCounter() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.caseCounter
}

// pruneLocked drops empty user and guild containers so the mapping only holds
// entries with at least one record. Caller must hold l.mu.
func (l *Ledger) pruneLocked(guildID, userID string) {
	if users, ok := l.warnings[guildID]; ok {
		if records, ok := users[userID]; ok && len(records) == 0 {
			delete(users, userID)
		}
		if len(users) == 0 {
			delete(l.warnings, guildID)
		}
	}
}
