package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ultraupload/ultraupload/internal/client/models"
	"github.com/ultraupload/ultraupload/internal/client/session"
	"github.com/ultraupload/ultraupload/internal/logging"
)

// SessionService is the part of session.Manager the CLI uses.
type SessionService interface {
	Restore(ctx context.Context) session.State
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, req models.RegistrationRequest) error
	Logout(ctx context.Context) error
	UpdateAvatar(ctx context.Context, avatarURL string) error
	SetLanguage(ctx context.Context, code string)
	User() (models.User, bool)
	Language() string
	HasToken() bool
	Subscribe(fn func(session.Snapshot)) (unsubscribe func())
}

// ProfileService is the part of profile.Manager the CLI uses.
type ProfileService interface {
	Load(ctx context.Context) models.Profile
	Profile() models.Profile
	SetBio(ctx context.Context, bio string)
	SetWebsite(ctx context.Context, website string)
	SetSocial(ctx context.Context, network, handle string) bool
	Clear(ctx context.Context)
}

// AvatarUploader stores an image and returns its public URL.
type AvatarUploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

type App struct {
	session  SessionService
	profile  ProfileService
	uploader AvatarUploader
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(s SessionService, p ProfileService, u AvatarUploader, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		session:  s,
		profile:  p,
		uploader: u,
		log:      log.With("component", "cli"),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// Run restores the session and blocks in the REPL until the user exits or
// stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.watchSession()()

	state := a.session.Restore(ctx)
	if state == session.StateAuthenticated {
		a.profile.Load(ctx)
	}

	a.println("Welcome to UltraUpload CLI (type 'help' for commands)")
	if u, ok := a.session.User(); ok {
		a.println("Hola,", u.DisplayName())
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

// watchSession prints a notice each time the session starts loading.
func (a *App) watchSession() (unsubscribe func()) {
	var loading bool
	return a.session.Subscribe(func(s session.Snapshot) {
		if s.Loading && !loading {
			a.println("Cargando...")
		}
		loading = s.Loading
	})
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.User()
	return ok
}

// getStatus renders "(username lang)" when logged in and "(lang)" otherwise.
func (a *App) getStatus() string {
	lang := a.session.Language()
	if u, ok := a.session.User(); ok {
		return fmt.Sprintf("(%s %s)", u.Username, lang)
	}
	return fmt.Sprintf("(%s)", lang)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// fail shows the user-facing message of err.
func (a *App) fail(err error) error {
	a.println(session.UserMessage(err))
	return err
}
