package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/ultraupload/ultraupload/internal/client/models"
	"github.com/ultraupload/ultraupload/internal/client/session"
)

type fakeSession struct {
	user     *models.User
	language string

	restoreState session.State
	loginErr     error
	registerErr  error
	logoutErr    error
	avatarErr    error

	gotEmail, gotPassword string
	gotRegister           models.RegistrationRequest
	gotAvatar             string
	loginCalls            int
	registerCalls         int

	subscriber   func(session.Snapshot)
	unsubscribed bool
}

func (f *fakeSession) Restore(context.Context) session.State { return f.restoreState }

func (f *fakeSession) Login(_ context.Context, email, password string) error {
	f.loginCalls++
	f.gotEmail, f.gotPassword = email, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.user = &models.User{ID: "1", Email: email, Username: "ana"}
	return nil
}

func (f *fakeSession) Register(_ context.Context, req models.RegistrationRequest) error {
	f.registerCalls++
	f.gotRegister = req
	if f.registerErr != nil {
		return f.registerErr
	}
	f.user = &models.User{ID: "2", Email: req.Email, Username: req.Username}
	return nil
}

func (f *fakeSession) Logout(context.Context) error {
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.user = nil
	return nil
}

func (f *fakeSession) UpdateAvatar(_ context.Context, url string) error {
	f.gotAvatar = url
	if f.avatarErr != nil {
		return f.avatarErr
	}
	if f.user != nil {
		f.user.AvatarURL = url
	}
	return nil
}

func (f *fakeSession) SetLanguage(_ context.Context, code string) { f.language = code }

func (f *fakeSession) User() (models.User, bool) {
	if f.user == nil {
		return models.User{}, false
	}
	return *f.user, true
}

func (f *fakeSession) Language() string {
	if f.language == "" {
		return "es"
	}
	return f.language
}

func (f *fakeSession) HasToken() bool { return f.user != nil }

func (f *fakeSession) Subscribe(fn func(session.Snapshot)) func() {
	f.subscriber = fn
	return func() { f.unsubscribed = true; f.subscriber = nil }
}

type fakeProfile struct {
	p       models.Profile
	loaded  int
	cleared bool
}

func (f *fakeProfile) Load(context.Context) models.Profile      { f.loaded++; return f.p }
func (f *fakeProfile) Profile() models.Profile                  { return f.p }
func (f *fakeProfile) SetBio(_ context.Context, bio string)     { f.p.Bio = bio }
func (f *fakeProfile) SetWebsite(_ context.Context, w string)   { f.p.Website = w }
func (f *fakeProfile) SetSocial(_ context.Context, network, handle string) bool {
	return f.p.SocialLinks.Set(network, handle)
}
func (f *fakeProfile) Clear(context.Context) { f.cleared = true; f.p = models.Profile{} }

type fakeUploader struct {
	url      string
	err      error
	gotName  string
	gotBytes []byte
}

func (f *fakeUploader) Upload(_ context.Context, name string, data []byte) (string, error) {
	f.gotName, f.gotBytes = name, data
	return f.url, f.err
}

// newTestApp builds an App reading input and writing to a buffer.
func newTestApp(t *testing.T, input string) (*App, *fakeSession, *fakeProfile, *fakeUploader, *bytes.Buffer) {
	t.Helper()
	s := &fakeSession{}
	p := &fakeProfile{}
	u := &fakeUploader{}
	var out bytes.Buffer
	a := NewApp(s, p, u, nil)
	a.reader = bufio.NewReader(bytes.NewBufferString(input))
	a.out = &out
	return a, s, p, u, &out
}

// stubPassword makes getPassword return pw.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}
