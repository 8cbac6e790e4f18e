package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/barrabusiness/lead_management_system/backend/auth"
	"github.com/barrabusiness/lead_management_system/backend/models"
)

// The super-administrator account. It can never be removed and its
// credentials are re-synchronized to these constants whenever the stored
// record drifts from them.
const (
	SuperAdminID    = "super-admin-001"
	superAdminName  = "Administrador Master"
	superAdminEmail = "wgmimovel@gmail.com"
	superAdminPass  = "Chupanas007!"
)

var (
	// ErrEmailTaken rejects a second staff account with the same e-mail.
	ErrEmailTaken = errors.New("e-mail já cadastrado")
	// ErrProtectedUser rejects removal of the super-admin account.
	ErrProtectedUser = errors.New("não é possível remover o administrador principal")
)

// Store owns the persisted document. Every operation runs load-mutate-save
// under one mutex, so callers never observe a partially written document.
// Two processes sharing a backend still race load-then-save and the later
// write wins; that limitation is accepted for a single-operator tool.
type Store struct {
	mu      sync.Mutex
	backend Backend

	// adminHash is the bcrypt hash of the fixed super-admin password,
	// computed once so repeated loads compare strings instead of
	// re-hashing, keeping reads idempotent.
	adminHash string
}

// New builds the store and runs the super-admin bootstrap so the fixed
// account exists before the first request is served.
func New(ctx context.Context, backend Backend) (*Store, error) {
	hash, err := auth.HashPassword(superAdminPass)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	s := &Store{backend: backend, adminHash: hash}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.load(ctx); err != nil {
		return nil, fmt.Errorf("bootstrap document: %w", err)
	}
	return s, nil
}

// load reads the document, initializing it when absent, and repairs the
// super-admin record before returning. Tampered or legacy documents are
// persisted immediately so the auth path always sees the repaired state.
// Callers must hold s.mu.
func (s *Store) load(ctx context.Context) (*models.Document, error) {
	raw, err := s.backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	doc := &models.Document{}
	if raw != nil {
		if err := json.Unmarshal(raw, doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
	}
	if doc.Properties == nil {
		doc.Properties = []models.Property{}
	}
	if doc.Interests == nil {
		doc.Interests = []models.BuyerInterest{}
	}
	if doc.Matches == nil {
		doc.Matches = []models.LeadMatch{}
	}
	// Older documents predate the users collection.
	if doc.Users == nil {
		doc.Users = []models.User{}
	}
	if s.repairSuperAdmin(doc) || raw == nil {
		if err := s.save(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// repairSuperAdmin re-synchronizes the fixed account, appending it when
// missing. Returns true when the document changed.
func (s *Store) repairSuperAdmin(doc *models.Document) bool {
	for i := range doc.Users {
		if doc.Users[i].ID != SuperAdminID {
			continue
		}
		u := &doc.Users[i]
		changed := false
		if u.Email != superAdminEmail {
			u.Email = superAdminEmail
			changed = true
		}
		if u.Password != s.adminHash {
			if auth.CheckPassword(superAdminPass, u.Password) == nil {
				// Hash written by an earlier run; keep it and remember
				// it so later loads skip the bcrypt comparison.
				s.adminHash = u.Password
			} else {
				u.Password = s.adminHash
				changed = true
			}
		}
		if u.Role != models.RoleAdmin {
			u.Role = models.RoleAdmin
			changed = true
		}
		return changed
	}
	doc.Users = append(doc.Users, models.User{
		ID:        SuperAdminID,
		Name:      superAdminName,
		Email:     superAdminEmail,
		Password:  s.adminHash,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UnixMilli(),
	})
	return true
}

func (s *Store) save(ctx context.Context, doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return s.backend.Save(ctx, raw)
}

// --- Properties ---

func (s *Store) AddProperty(ctx context.Context, p models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	doc.Properties = append(doc.Properties, p)
	return s.save(ctx, doc)
}

func (s *Store) GetProperties(ctx context.Context) ([]models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Properties, nil
}

// RemoveProperty deletes a listing by id. Unknown ids are a silent no-op
// so repeated clicks stay idempotent.
func (s *Store) RemoveProperty(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := doc.Properties[:0]
	for _, p := range doc.Properties {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	doc.Properties = kept
	return s.save(ctx, doc)
}

// TogglePropertyFeatured flips the highlight flag. Unknown ids are a
// silent no-op.
func (s *Store) TogglePropertyFeatured(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Properties {
		if doc.Properties[i].ID == id {
			doc.Properties[i].IsFeatured = !doc.Properties[i].IsFeatured
			return s.save(ctx, doc)
		}
	}
	return nil
}

// --- Interests ---

func (s *Store) AddInterest(ctx context.Context, interest models.BuyerInterest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	doc.Interests = append(doc.Interests, interest)
	return s.save(ctx, doc)
}

func (s *Store) GetInterests(ctx context.Context) ([]models.BuyerInterest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Interests, nil
}

// --- Matches ---

// AddMatch appends a lead unless one with the same (propertyId,
// buyerContact) pair already exists; duplicates are dropped silently. The
// boolean reports whether the match was inserted.
func (s *Store) AddMatch(ctx context.Context, match models.LeadMatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range doc.Matches {
		if m.PropertyID == match.PropertyID && m.BuyerContact == match.BuyerContact {
			return false, nil
		}
	}
	doc.Matches = append(doc.Matches, match)
	if err := s.save(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) GetMatches(ctx context.Context) ([]models.LeadMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Matches, nil
}

// UpdateMatchStatus overwrites the status of one lead in place. Unknown
// ids are a silent no-op.
func (s *Store) UpdateMatchStatus(ctx context.Context, id string, status models.MatchStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Matches {
		if doc.Matches[i].ID == id {
			doc.Matches[i].Status = status
			return s.save(ctx, doc)
		}
	}
	return nil
}

// --- Users ---

func (s *Store) GetUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Users, nil
}

// AddUser appends a staff account. The e-mail must be unique (exact,
// case-sensitive match) and the role is always MANAGER: the bootstrap is
// the only path that creates an ADMIN.
func (s *Store) AddUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	for _, u := range doc.Users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}
	user.Role = models.RoleManager
	doc.Users = append(doc.Users, user)
	return s.save(ctx, doc)
}

// RemoveUser deletes a staff account by id. The super-admin is protected;
// unknown ids are a silent no-op.
func (s *Store) RemoveUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == SuperAdminID {
		return ErrProtectedUser
	}
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := doc.Users[:0]
	for _, u := range doc.Users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	doc.Users = kept
	return s.save(ctx, doc)
}
