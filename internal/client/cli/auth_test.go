package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/asemenova/toolshare/internal/client/api"
	"github.com/asemenova/toolshare/internal/client/models"
)

// stubInputs replaces the interactive input seams. Text prompts are answered
// from answers in order; the password prompt returns pw.
func stubInputs(t *testing.T, answers []string, pw []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", nil
		}
		v := answers[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), pw...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeSessionService struct {
	loggedIn bool
	admin    bool
	profile  *models.User

	loginCreds   []api.Credentials
	loginErr     error
	loginSignsIn bool

	registered  []api.Registration
	registerErr error

	updates   []api.ProfileUpdate
	updateErr error

	logoutCalled bool
	expired      bool
}

func (f *fakeSessionService) Login(_ context.Context, creds api.Credentials) error {
	f.loginCreds = append(f.loginCreds, creds)
	if f.loginErr != nil {
		return f.loginErr
	}
	if f.loginSignsIn {
		f.loggedIn = true
	}
	return nil
}

func (f *fakeSessionService) Register(_ context.Context, reg api.Registration) (*models.User, error) {
	f.registered = append(f.registered, reg)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &models.User{ID: 1, Username: reg.Username, Nickname: reg.Nickname}, nil
}

func (f *fakeSessionService) UpdateProfile(_ context.Context, upd api.ProfileUpdate) error {
	f.updates = append(f.updates, upd)
	return f.updateErr
}

func (f *fakeSessionService) Logout(context.Context) {
	f.logoutCalled = true
	f.loggedIn = false
}

func (f *fakeSessionService) IsLoggedIn() bool              { return f.loggedIn }
func (f *fakeSessionService) IsAdmin() bool                 { return f.admin }
func (f *fakeSessionService) Points() int                   { return 0 }
func (f *fakeSessionService) Profile() *models.User         { return f.profile }
func (f *fakeSessionService) TokenExpired(_ time.Time) bool { return f.expired }

func newTestApp(sess SessionService) (*App, *strings.Builder) {
	var out strings.Builder
	return &App{
		session: sess,
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     &out,
	}, &out
}

func TestLogin_Success(t *testing.T) {
	f := &fakeSessionService{loginSignsIn: true}
	a, out := newTestApp(f)
	stubInputs(t, []string{"alice"}, []byte("secret"))

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if len(f.loginCreds) != 1 {
		t.Fatalf("want 1 login call, got %d", len(f.loginCreds))
	}
	if f.loginCreds[0].Username != "alice" || f.loginCreds[0].Password != "secret" {
		t.Fatalf("credentials mismatch: %+v", f.loginCreds[0])
	}
	if !strings.Contains(out.String(), "Welcome back, alice") {
		t.Fatalf("missing welcome, got %q", out.String())
	}
}

func TestLogin_RejectedCredentialIsReportedNotReturned(t *testing.T) {
	f := &fakeSessionService{loginErr: &api.Error{Code: 401, Message: "wrong password"}}
	a, out := newTestApp(f)
	stubInputs(t, []string{"alice"}, []byte("nope"))

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("rejected credential should not surface as error, got %v", err)
	}
	if !strings.Contains(out.String(), "Login failed: wrong password") {
		t.Fatalf("missing rejection message, got %q", out.String())
	}
}

func TestLogin_TransportErrorPropagates(t *testing.T) {
	f := &fakeSessionService{loginErr: errors.New("dial tcp: connection refused")}
	a, _ := newTestApp(f)
	stubInputs(t, []string{"alice"}, []byte("secret"))

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want transport error")
	}
}

func TestLogin_ProfileFetchFailureLeavesSignedOut(t *testing.T) {
	// Login succeeds but the follow-up profile fetch fails, so the session
	// reports signed-out afterwards.
	f := &fakeSessionService{loginSignsIn: false}
	a, out := newTestApp(f)
	stubInputs(t, []string{"alice"}, []byte("secret"))

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if !strings.Contains(out.String(), "profile could not be loaded") {
		t.Fatalf("missing degraded-login message, got %q", out.String())
	}
}

func TestRegister_SuccessSignsIn(t *testing.T) {
	f := &fakeSessionService{loginSignsIn: true}
	a, out := newTestApp(f)
	stubInputs(t, []string{"bob", "Bob the Builder"}, []byte("hunter2"))

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if len(f.registered) != 1 {
		t.Fatalf("want 1 register call, got %d", len(f.registered))
	}
	reg := f.registered[0]
	if reg.Username != "bob" || reg.Nickname != "Bob the Builder" || reg.Password != "hunter2" {
		t.Fatalf("registration mismatch: %+v", reg)
	}
	if len(f.loginCreds) != 1 {
		t.Fatalf("registration should sign in, login calls: %d", len(f.loginCreds))
	}
	if !strings.Contains(out.String(), "Welcome, bob") {
		t.Fatalf("missing welcome, got %q", out.String())
	}
}

func TestRegister_RejectedIsReportedAndSkipsLogin(t *testing.T) {
	f := &fakeSessionService{registerErr: &api.Error{Code: 400, Message: "username taken"}}
	a, out := newTestApp(f)
	stubInputs(t, []string{"bob", "Bob"}, []byte("hunter2"))

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("rejected registration should not surface as error, got %v", err)
	}
	if len(f.loginCreds) != 0 {
		t.Fatalf("rejected registration must not attempt login")
	}
	if !strings.Contains(out.String(), "Registration failed: username taken") {
		t.Fatalf("missing rejection message, got %q", out.String())
	}
}

func TestLogout(t *testing.T) {
	f := &fakeSessionService{loggedIn: true}
	a, out := newTestApp(f)

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatalf("session logout not called")
	}
	if !strings.Contains(out.String(), "Signed out.") {
		t.Fatalf("missing confirmation, got %q", out.String())
	}
}
