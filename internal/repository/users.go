package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nitishkumar2026/CineReview/internal/domain"
)

// defaultUserID identifies the built-in profile that anonymous logins
// resolve to.
const defaultUserID = "user-1"

// UserStore keeps session-lifetime user accounts. It is seeded with one
// default profile so login can succeed before anyone registers.
type UserStore struct {
	mu        sync.RWMutex
	byID      map[string]domain.User
	idByEmail map[string]string
	passwords map[string][]byte // user ID -> bcrypt hash
}

func NewUserStore() *UserStore {
	s := &UserStore{
		byID:      make(map[string]domain.User),
		idByEmail: make(map[string]string),
		passwords: make(map[string][]byte),
	}

	def := domain.User{
		ID:             defaultUserID,
		Username:       "cinefan",
		Email:          "cinefan@example.com",
		ProfilePicture: "https://picsum.photos/seed/cinereview-avatar-1/200/200",
		JoinDate:       time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
	s.byID[def.ID] = def
	s.idByEmail[def.Email] = def.ID

	return s
}

func (s *UserStore) DefaultUser() domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[defaultUserID]
}

func (s *UserStore) GetByID(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserStore) GetByEmail(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.idByEmail[email]
	if !ok {
		return domain.User{}, false
	}
	return s.byID[id], true
}

// Register creates an account with a hashed password. Registering an
// email that already exists updates that account's username and password
// rather than creating a duplicate.
func (s *UserStore) Register(username, email, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.idByEmail[email]; ok {
		user := s.byID[id]
		user.Username = username
		s.byID[id] = user
		s.passwords[id] = hash
		return user, nil
	}

	user := domain.User{
		ID:             uuid.NewString(),
		Username:       username,
		Email:          email,
		ProfilePicture: fmt.Sprintf("https://picsum.photos/seed/cinereview-avatar-%s/200/200", username),
		JoinDate:       time.Now().UTC(),
	}
	s.byID[user.ID] = user
	s.idByEmail[email] = user.ID
	s.passwords[user.ID] = hash

	return user, nil
}

// VerifyPassword reports whether the stored hash for the user matches.
// Users without a stored password (the default profile) always verify,
// which is what keeps anonymous login auto-succeeding.
func (s *UserStore) VerifyPassword(userID, password string) bool {
	s.mu.RLock()
	hash, ok := s.passwords[userID]
	s.mu.RUnlock()

	if !ok {
		return true
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
