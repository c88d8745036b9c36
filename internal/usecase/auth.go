package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"yolimar/internal/domain"
)

// AuthUsecase holds the back-office session. Credentials are checked by a
// pluggable verifier; the session persists under its own storage key so a
// restart keeps the user signed in.
type AuthUsecase struct {
	mu       sync.Mutex
	verifier verifier
	store    store
	key      string
	user     *domain.User
	log      *slog.Logger
}

func NewAuthUsecase(verifier verifier, store store, key string, log *slog.Logger) *AuthUsecase {
	return &AuthUsecase{verifier: verifier, store: store, key: key, log: log}
}

// Load restores a persisted session, if any.
func (uc *AuthUsecase) Load(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	data, err := uc.store.Get(ctx, uc.key)
	if err != nil {
		if err != domain.ErrRecordNotFound {
			uc.log.Warn("failed to load session", "error", err)
		}
		return
	}
	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		uc.log.Warn("corrupt session payload, discarding", "error", err)
		return
	}
	uc.user = &user
	uc.log.Info("session restored", "email", user.Email, "role", user.Role)
}

func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	found, ok := uc.verifier.Verify(email, password)
	if !ok {
		uc.log.Warn("login rejected", "email", email)
		return nil, domain.ErrInvalidCredentials
	}

	user := *found
	user.LoginTime = time.Now().UTC()
	uc.user = &user

	if data, err := json.Marshal(user); err == nil {
		if err := uc.store.Set(ctx, uc.key, data); err != nil {
			uc.log.Error("failed to persist session", "error", err)
		}
	}

	uc.log.Info("login accepted", "email", user.Email, "role", user.Role)
	return &user, nil
}

func (uc *AuthUsecase) Logout(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.user = nil
	if err := uc.store.Remove(ctx, uc.key); err != nil {
		uc.log.Error("failed to remove persisted session", "error", err)
	}
	uc.log.Info("session closed")
}

// CurrentUser returns the active session user, or nil.
func (uc *AuthUsecase) CurrentUser() *domain.User {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.user == nil {
		return nil
	}
	user := *uc.user
	return &user
}

func (uc *AuthUsecase) IsAuthenticated() bool {
	return uc.CurrentUser() != nil
}

func (uc *AuthUsecase) IsAdmin() bool {
	return uc.CurrentUser().IsAdmin()
}

func (uc *AuthUsecase) IsEditor() bool {
	return uc.CurrentUser().IsEditor()
}
