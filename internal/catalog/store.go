// Package catalog owns the merged glossary: built-in terms, user-generated
// terms and the set of built-ins the user has hidden.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/interfaces"
	"github.com/bobmcallan/vibeterms/internal/models"
)

// Store holds the catalog state in memory and writes each slice back to the
// key-value store on every mutation, under the same lock, so persisted order
// matches in-memory order. Storage failures are logged and never surface to
// callers; the in-memory state stays authoritative for the session.
type Store struct {
	kv       interfaces.KeyValueStorage
	builtins []models.Term
	logger   *common.Logger

	mu    sync.RWMutex
	state models.CatalogState
}

// NewStore creates a store over kv. Call Load before serving reads.
func NewStore(kv interfaces.KeyValueStorage, builtins []models.Term, logger *common.Logger) *Store {
	return &Store{
		kv:       kv,
		builtins: builtins,
		logger:   logger,
		state:    emptyState(),
	}
}

func emptyState() models.CatalogState {
	return models.CatalogState{
		CustomTerms:       []models.Term{},
		DeletedDefaultIDs: []string{},
	}
}

// Load reads both persisted slices. A slice that is missing or cannot be
// decoded is replaced by an empty one; startup never fails here.
func (s *Store) Load(ctx context.Context) models.CatalogState {
	custom := []models.Term{}
	if ok := s.read(ctx, models.KeyCustomTerms, &custom); !ok || custom == nil {
		custom = []models.Term{}
	}

	deleted := []string{}
	if ok := s.read(ctx, models.KeyDeletedDefaultIDs, &deleted); !ok || deleted == nil {
		deleted = []string{}
	}

	s.mu.Lock()
	s.state = models.CatalogState{CustomTerms: custom, DeletedDefaultIDs: dedupe(deleted)}
	s.mu.Unlock()

	s.logger.Info().
		Int("custom_terms", len(custom)).
		Int("hidden_defaults", len(deleted)).
		Msg("Catalog state loaded")

	return s.State()
}

func (s *Store) read(ctx context.Context, key string, dest any) bool {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrKeyNotFound) {
			s.logger.Warn().Err(err).Str("key", key).Msg("Failed to read catalog state, using empty")
		}
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Failed to parse catalog state, using empty")
		return false
	}
	return true
}

// write must be called with s.mu held.
func (s *Store) write(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to encode catalog state")
		return
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to persist catalog state; change kept in memory only")
	}
}

// AddGeneratedTerm prepends term to the custom terms. The caller is
// responsible for the term's shape. A custom term with the same id is replaced.
func (s *Store) AddGeneratedTerm(ctx context.Context, term models.Term) {
	s.mu.Lock()
	defer s.mu.Unlock()

	custom := make([]models.Term, 0, len(s.state.CustomTerms)+1)
	custom = append(custom, term.Clone())
	for _, t := range s.state.CustomTerms {
		if t.ID == term.ID {
			s.logger.Warn().Str("id", term.ID).Msg("Replacing custom term with duplicate id")
			continue
		}
		custom = append(custom, t)
	}
	s.state.CustomTerms = custom

	s.write(ctx, models.KeyCustomTerms, custom)
	s.logger.Debug().Str("id", term.ID).Str("word", term.Word).Msg("Generated term added")
}

// DeleteTerm removes a custom term, or hides a built-in by id. Ids that match
// neither are recorded as hidden too; they have no visible effect.
func (s *Store) DeleteTerm(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.state.CustomTerms {
		if t.ID != id {
			continue
		}
		custom := make([]models.Term, 0, len(s.state.CustomTerms)-1)
		custom = append(custom, s.state.CustomTerms[:i]...)
		custom = append(custom, s.state.CustomTerms[i+1:]...)
		s.state.CustomTerms = custom

		s.write(ctx, models.KeyCustomTerms, custom)
		s.logger.Debug().Str("id", id).Msg("Custom term deleted")
		return
	}

	for _, hidden := range s.state.DeletedDefaultIDs {
		if hidden == id {
			return
		}
	}

	deleted := make([]string, len(s.state.DeletedDefaultIDs), len(s.state.DeletedDefaultIDs)+1)
	copy(deleted, s.state.DeletedDefaultIDs)
	deleted = append(deleted, id)
	s.state.DeletedDefaultIDs = deleted

	s.write(ctx, models.KeyDeletedDefaultIDs, deleted)
	s.logger.Debug().Str("id", id).Msg("Built-in term hidden")
}

// Reset discards every generated term and restores every hidden built-in.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = emptyState()
	s.write(ctx, models.KeyCustomTerms, s.state.CustomTerms)
	s.write(ctx, models.KeyDeletedDefaultIDs, s.state.DeletedDefaultIDs)
	s.logger.Info().Msg("Catalog reset")
}

// AllTerms returns custom terms (newest first) followed by visible built-ins.
func (s *Store) AllTerms() []models.Term {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return mergeTerms(s.state, s.builtins)
}

// Search filters AllTerms by category and query.
func (s *Store) Search(category models.Category, query string) []models.Term {
	return Search(s.AllTerms(), category, query)
}

// Get returns a visible term by id.
func (s *Store) Get(id string) (models.Term, bool) {
	for _, t := range s.AllTerms() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Term{}, false
}

// State returns a copy of the persisted state.
func (s *Store) State() models.CatalogState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CatalogState{
		CustomTerms:       cloneTerms(s.state.CustomTerms),
		DeletedDefaultIDs: append([]string{}, s.state.DeletedDefaultIDs...),
	}
}

// mergeTerms builds the visible catalog. A built-in is skipped when hidden or
// when a custom term already uses its id, so ids stay unique.
func mergeTerms(state models.CatalogState, builtins []models.Term) []models.Term {
	hidden := make(map[string]struct{}, len(state.DeletedDefaultIDs)+len(state.CustomTerms))
	for _, id := range state.DeletedDefaultIDs {
		hidden[id] = struct{}{}
	}
	for _, t := range state.CustomTerms {
		hidden[t.ID] = struct{}{}
	}

	out := make([]models.Term, 0, len(state.CustomTerms)+len(builtins))
	for _, t := range state.CustomTerms {
		out = append(out, t.Clone())
	}
	for _, t := range builtins {
		if _, skip := hidden[t.ID]; skip {
			continue
		}
		out = append(out, t.Clone())
	}
	return out
}

func cloneTerms(terms []models.Term) []models.Term {
	out := make([]models.Term, len(terms))
	for i, t := range terms {
		out[i] = t.Clone()
	}
	return out
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

var _ interfaces.CatalogService = (*Store)(nil)
