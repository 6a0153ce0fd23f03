package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/idtoken"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/util"
)

var (
	ErrSessionInvalid     = errors.New("session is invalid or expired")
	ErrIdentityRejected   = errors.New("identity token rejected")
	ErrIdentityNotEnabled = errors.New("identity provider not configured")
)

// IdentityVerifier checks a token issued by an external identity provider and
// returns the verified email.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type GoogleIdentityVerifier struct {
	audience string
}

func NewGoogleIdentityVerifier(audience string) *GoogleIdentityVerifier {
	return &GoogleIdentityVerifier{audience: strings.TrimSpace(audience)}
}

func (v *GoogleIdentityVerifier) Verify(ctx context.Context, token string) (string, error) {
	payload, err := idtoken.Validate(ctx, token, v.audience)
	if err != nil {
		return "", err
	}
	email, _ := payload.Claims["email"].(string)
	if strings.TrimSpace(email) == "" {
		return "", errors.New("token has no email claim")
	}
	return email, nil
}

type sessionState struct {
	session    domain.Session
	itinerary  *ItineraryStore
	lastSearch *domain.SearchContext
}

// SessionService owns every live browsing session together with its
// itinerary. Nothing is persisted; ending the process ends all sessions.
type SessionService struct {
	jwt      *util.JWTManager
	verifier IdentityVerifier
	now      func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionState
}

func NewSessionService(jwt *util.JWTManager, verifier IdentityVerifier) *SessionService {
	return &SessionService{
		jwt:      jwt,
		verifier: verifier,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*sessionState),
	}
}

// Start opens an anonymous session.
func (s *SessionService) Start(ctx context.Context) (string, *domain.Session, error) {
	return s.open(nil)
}

func (s *SessionService) SignInWithGoogle(ctx context.Context, idToken string) (string, *domain.Session, error) {
	if s.verifier == nil {
		return "", nil, ErrIdentityNotEnabled
	}
	if strings.TrimSpace(idToken) == "" {
		return "", nil, ErrIdentityRejected
	}
	email, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return "", nil, errors.Join(ErrIdentityRejected, err)
	}
	email = strings.ToLower(strings.TrimSpace(email))
	return s.open(&email)
}

func (s *SessionService) open(email *string) (string, *domain.Session, error) {
	id := uuid.New()
	token, expiresAt, err := s.jwt.Generate(id, email)
	if err != nil {
		return "", nil, err
	}

	state := &sessionState{
		session: domain.Session{
			ID:        id,
			Email:     email,
			CreatedAt: s.now().UTC(),
			ExpiresAt: expiresAt.UTC(),
		},
		itinerary: NewItineraryStore(),
	}

	s.mu.Lock()
	s.sessions[id] = state
	s.mu.Unlock()

	session := state.session
	return token, &session, nil
}

func (s *SessionService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrSessionInvalid
	}
	state, err := s.lookup(claims.SessionID)
	if err != nil {
		return nil, err
	}
	session := state.session
	return &session, nil
}

func (s *SessionService) End(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *SessionService) Itinerary(id uuid.UUID) (*ItineraryStore, error) {
	state, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return state.itinerary, nil
}

func (s *SessionService) RememberSearch(id uuid.UUID, sc domain.SearchContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[id]
	if !ok || state.session.Expired(s.now()) {
		return ErrSessionInvalid
	}
	state.lastSearch = &sc
	return nil
}

func (s *SessionService) LastSearch(id uuid.UUID) *domain.SearchContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[id]
	if !ok || state.lastSearch == nil {
		return nil
	}
	sc := *state.lastSearch
	return &sc
}

// Sweep drops expired sessions and returns how many were removed.
func (s *SessionService) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, state := range s.sessions {
		if state.session.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps expired sessions every interval until ctx is done.
func (s *SessionService) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *SessionService) lookup(id uuid.UUID) (*sessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionInvalid
	}
	if state.session.Expired(s.now()) {
		delete(s.sessions, id)
		return nil, ErrSessionInvalid
	}
	return state, nil
}
