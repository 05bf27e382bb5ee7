package tv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tvSessionRepo "obratrack/database/repository/tvsession"
	"obratrack/models"
	"obratrack/services/realtime"
)

// fakeSessionRepo is an in-memory TVSessionRepository. A single mutex stands
// in for the storage layer's conditional updates, so the connect guard keeps
// its exactly-one-winner property.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.TVSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.TVSession)}
}

func (r *fakeSessionRepo) Create(sess *models.TVSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[sess.Token]; exists {
		return tvSessionRepo.ErrDuplicateToken
	}
	now := time.Now()
	sess.CreatedAt = now
	sess.UpdatedAt = now
	cp := *sess
	r.sessions[sess.Token] = &cp
	return nil
}

func (r *fakeSessionRepo) FindActiveByToken(token string) (*models.TVSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[token]
	if !ok || !sess.Visible(time.Now()) {
		return nil, tvSessionRepo.ErrNotFound
	}
	cp := *sess
	return &cp, nil
}

func (r *fakeSessionRepo) MarkConnected(token, userID string) (*models.TVSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	sess, ok := r.sessions[token]
	if !ok || !sess.Visible(now) {
		return nil, tvSessionRepo.ErrNotFound
	}
	if sess.State != models.TVSessionPending {
		return nil, tvSessionRepo.ErrAlreadyConnected
	}
	sess.State = models.TVSessionConnected
	sess.UserID = userID
	sess.ConnectedAt = &now
	sess.UpdatedAt = now
	cp := *sess
	return &cp, nil
}

func (r *fakeSessionRepo) MarkClosed(token, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	sess, ok := r.sessions[token]
	if !ok || !sess.Visible(now) || sess.State != models.TVSessionConnected {
		return tvSessionRepo.ErrNotFound
	}
	if sess.UserID != userID {
		return tvSessionRepo.ErrForbidden
	}
	sess.State = models.TVSessionClosed
	sess.Active = false
	sess.UpdatedAt = now
	return nil
}

func (r *fakeSessionRepo) MarkExpired(token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[token]
	if !ok || !sess.Active {
		return false, nil
	}
	sess.State = models.TVSessionClosed
	sess.Active = false
	sess.UpdatedAt = time.Now()
	return true, nil
}

type fakeUserRepo struct {
	users  map[string]*models.User
	getErr error
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(u *models.User) error { return nil }
func (r *fakeUserRepo) Update(u *models.User) error { return nil }

type scheduledExpiry struct {
	token string
	at    time.Time
}

type fakeScheduler struct {
	mu        sync.Mutex
	scheduled []scheduledExpiry
}

func (s *fakeScheduler) ScheduleExpiry(token string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled = append(s.scheduled, scheduledExpiry{token: token, at: at})
	return nil
}

func newTestService(ttl time.Duration) (*DefaultTVService, *realtime.Hub, *fakeScheduler) {
	hub := realtime.NewHub()
	sched := &fakeScheduler{}
	svc := &DefaultTVService{
		Repo: newFakeSessionRepo(),
		Users: &fakeUserRepo{users: map[string]*models.User{
			"u1": {ID: "u1", Name: "Laura Mendez", Email: "laura@example.com", Role: models.RoleSupervisor, Position: "Supervisor", IsActive: true},
			"u2": {ID: "u2", Name: "Pedro Ruiz", Email: "pedro@example.com", Role: models.RoleWorker, Position: "Albanil", IsActive: true},
		}},
		Channel:   hub,
		Generator: NewCodeGenerator(0),
		Scheduler: sched,
		TTL:       ttl,
	}
	return svc, hub, sched
}

func TestCreateSessionStartsPending(t *testing.T) {
	svc, _, sched := newTestService(10 * time.Minute)

	sess, err := svc.CreateSession()
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if sess.Token == "" {
		t.Error("CreateSession() returned empty token")
	}
	if sess.QRCode == "" {
		t.Error("CreateSession() returned empty QR code")
	}
	if sess.State != models.TVSessionPending {
		t.Errorf("State = %v, want %v", sess.State, models.TVSessionPending)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl < 9*time.Minute || ttl > 10*time.Minute {
		t.Errorf("session TTL = %v, want about 10m", ttl)
	}

	if len(sched.scheduled) != 1 {
		t.Fatalf("scheduled expiries = %d, want 1", len(sched.scheduled))
	}
	if sched.scheduled[0].token != sess.Token {
		t.Errorf("scheduled token = %q, want %q", sched.scheduled[0].token, sess.Token)
	}

	status, err := svc.Status(sess.Token)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status.State != models.TVSessionPending {
		t.Errorf("Status().State = %v, want %v", status.State, models.TVSessionPending)
	}
	if status.User != nil {
		t.Errorf("Status().User = %v, want nil before connect", status.User)
	}
}

func TestConnectBindsUserAndNotifies(t *testing.T) {
	svc, hub, _ := newTestService(10 * time.Minute)

	sess, err := svc.CreateSession()
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	events, cancel := hub.Subscribe(context.Background(), sess.Token)
	defer cancel()

	connected, summary, err := svc.Connect(sess.Token, "u1")
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if connected.State != models.TVSessionConnected {
		t.Errorf("State = %v, want %v", connected.State, models.TVSessionConnected)
	}
	if connected.ConnectedAt == nil {
		t.Error("ConnectedAt = nil, want set")
	}
	if summary.ID != "u1" || summary.Name != "Laura Mendez" {
		t.Errorf("summary = %+v, want user u1", summary)
	}

	select {
	case evt := <-events:
		if evt.Type != realtime.EventUserConnected {
			t.Errorf("event type = %q, want %q", evt.Type, realtime.EventUserConnected)
		}
		if _, ok := evt.Data["user"]; !ok {
			t.Error("event data missing user")
		}
	case <-time.After(time.Second):
		t.Fatal("no event received after Connect")
	}

	status, err := svc.Status(sess.Token)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status.User == nil || status.User.ID != "u1" {
		t.Errorf("Status().User = %v, want u1", status.User)
	}
}

func TestConnectTwiceFails(t *testing.T) {
	svc, _, _ := newTestService(10 * time.Minute)

	sess, _ := svc.CreateSession()
	if _, _, err := svc.Connect(sess.Token, "u1"); err != nil {
		t.Fatalf("first Connect() error = %v", err)
	}

	_, _, err := svc.Connect(sess.Token, "u2")
	if !errors.Is(err, ErrAlreadyConnected) {
		t.Errorf("second Connect() error = %v, want ErrAlreadyConnected", err)
	}

	// The loser must not have overwritten the winner's identity.
	status, err := svc.Status(sess.Token)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status.User == nil || status.User.ID != "u1" {
		t.Errorf("bound user = %v, want u1", status.User)
	}
}

func TestConcurrentConnectHasOneWinner(t *testing.T) {
	svc, _, _ := newTestService(10 * time.Minute)
	sess, _ := svc.CreateSession()

	const attempts = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	losses := 0

	for i := 0; i < attempts; i++ {
		userID := "u1"
		if i%2 == 1 {
			userID = "u2"
		}
		wg.Add(1)
		go func(uid string) {
			defer wg.Done()
			_, _, err := svc.Connect(sess.Token, uid)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, ErrAlreadyConnected):
				losses++
			default:
				t.Errorf("Connect() unexpected error = %v", err)
			}
		}(userID)
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("winners = %d, want exactly 1", wins)
	}
	if losses != attempts-1 {
		t.Errorf("losers = %d, want %d", losses, attempts-1)
	}
}

func TestStatusSurvivesUserLookupFailure(t *testing.T) {
	svc, _, _ := newTestService(10 * time.Minute)
	sess, _ := svc.CreateSession()
	if _, _, err := svc.Connect(sess.Token, "u1"); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	// A user store outage must not take down the status poll; the display
	// just sees the session without the user summary.
	svc.Users.(*fakeUserRepo).getErr = errors.New("user store down")

	status, err := svc.Status(sess.Token)
	if err != nil {
		t.Fatalf("Status() error = %v, want degraded success", err)
	}
	if status.State != models.TVSessionConnected {
		t.Errorf("Status().State = %v, want %v", status.State, models.TVSessionConnected)
	}
	if status.User != nil {
		t.Errorf("Status().User = %v, want nil when lookup fails", status.User)
	}
}

func TestDisconnectEnforcesIdentity(t *testing.T) {
	svc, hub, _ := newTestService(10 * time.Minute)
	sess, _ := svc.CreateSession()
	if _, _, err := svc.Connect(sess.Token, "u1"); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	if err := svc.Disconnect(sess.Token, "u2"); !errors.Is(err, ErrForbidden) {
		t.Errorf("Disconnect() by other user error = %v, want ErrForbidden", err)
	}

	events, cancel := hub.Subscribe(context.Background(), sess.Token)
	defer cancel()

	if err := svc.Disconnect(sess.Token, "u1"); err != nil {
		t.Fatalf("Disconnect() by bound user error = %v", err)
	}

	select {
	case evt := <-events:
		if evt.Type != realtime.EventUserDisconnected {
			t.Errorf("event type = %q, want %q", evt.Type, realtime.EventUserDisconnected)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received after Disconnect")
	}

	// A closed session is gone as far as callers can tell.
	if _, err := svc.Status(sess.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Status() after close error = %v, want ErrSessionNotFound", err)
	}
	if err := svc.Disconnect(sess.Token, "u1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Disconnect() error = %v, want ErrSessionNotFound", err)
	}
}

func TestDisconnectPendingSessionFails(t *testing.T) {
	svc, _, _ := newTestService(10 * time.Minute)
	sess, _ := svc.CreateSession()

	if err := svc.Disconnect(sess.Token, "u1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Disconnect() on pending session error = %v, want ErrSessionNotFound", err)
	}
}

func TestExpiredSessionIndistinguishableFromAbsent(t *testing.T) {
	svc, _, _ := newTestService(-time.Minute) // already expired at creation
	sess, err := svc.CreateSession()
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	if _, err := svc.Status(sess.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Status() on expired session error = %v, want ErrSessionNotFound", err)
	}
	if _, _, err := svc.Connect(sess.Token, "u1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Connect() on expired session error = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.Status("no-such-token"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Status() on absent session error = %v, want ErrSessionNotFound", err)
	}
}

func TestExpireSessionEmitsOnce(t *testing.T) {
	svc, hub, _ := newTestService(10 * time.Minute)
	sess, _ := svc.CreateSession()

	events, cancel := hub.Subscribe(context.Background(), sess.Token)
	defer cancel()

	if err := svc.ExpireSession(sess.Token); err != nil {
		t.Fatalf("ExpireSession() error = %v", err)
	}

	select {
	case evt := <-events:
		if evt.Type != realtime.EventSessionExpired {
			t.Errorf("event type = %q, want %q", evt.Type, realtime.EventSessionExpired)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received after ExpireSession")
	}

	// Expiring an already-closed session is a no-op without a second event.
	if err := svc.ExpireSession(sess.Token); err != nil {
		t.Fatalf("second ExpireSession() error = %v", err)
	}
	select {
	case evt := <-events:
		t.Errorf("unexpected second event %q", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestExpireSessionAfterDisconnectIsSilent(t *testing.T) {
	svc, hub, _ := newTestService(10 * time.Minute)
	sess, _ := svc.CreateSession()
	if _, _, err := svc.Connect(sess.Token, "u1"); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if err := svc.Disconnect(sess.Token, "u1"); err != nil {
		t.Fatalf("Disconnect() error = %v", err)
	}

	events, cancel := hub.Subscribe(context.Background(), sess.Token)
	defer cancel()

	if err := svc.ExpireSession(sess.Token); err != nil {
		t.Fatalf("ExpireSession() error = %v", err)
	}
	select {
	case evt := <-events:
		t.Errorf("unexpected event %q after expiring closed session", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}
