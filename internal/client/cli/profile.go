package cli

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ultraupload/ultraupload/internal/common"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

var getMultiline = GetMultiline

// UpdateAvatar sets the avatar from a remote URL or, for a local path,
// uploads the file first.
func (a *App) UpdateAvatar(ctx context.Context, src string) error {
	if src == "" {
		a.println("Usage: avatar <path-or-url>")
		return errInput
	}

	avatarURL := src
	if !isRemote(src) {
		data, err := readFile(src)
		if err != nil {
			a.log.Warn(ctx, "read avatar file", "path", src, "error", err)
			a.println("No se pudo leer el archivo")
			return err
		}
		avatarURL, err = a.uploader.Upload(ctx, filepath.Base(src), data)
		if err != nil {
			a.log.Error(ctx, "avatar upload failed", "error", err)
			a.println("No se pudo subir la imagen")
			return err
		}
	}

	if err := a.session.UpdateAvatar(ctx, avatarURL); err != nil {
		return a.fail(err)
	}
	a.println("Avatar:", avatarURL)
	return nil
}

func isRemote(src string) bool {
	u, err := url.Parse(src)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// SetLanguage switches the UI language.
func (a *App) SetLanguage(ctx context.Context, code string) error {
	code = strings.ToLower(strings.TrimSpace(code))
	if !common.IsSupportedLanguage(code) {
		a.println("Usage: lang <" + strings.Join(common.SupportedLanguages, "|") + ">")
		return common.ErrorUnsupportedLanguage
	}
	a.session.SetLanguage(ctx, code)
	return nil
}

// ShowProfile prints the profile details.
func (a *App) ShowProfile(_ context.Context) error {
	p := a.profile.Profile()
	a.println("Bio:      ", p.Bio)
	a.println("Website:  ", p.Website)
	a.println("LinkedIn: ", p.SocialLinks.LinkedIn)
	a.println("GitHub:   ", p.SocialLinks.GitHub)
	a.println("Instagram:", p.SocialLinks.Instagram)
	a.println("Twitter:  ", p.SocialLinks.Twitter)
	return nil
}

// SetBio stores text as the bio; without text it is read interactively.
func (a *App) SetBio(ctx context.Context, text string) error {
	if text == "" {
		var err error
		if text, err = getMultiline(a.reader, "Enter bio", a.out); err != nil {
			return err
		}
	}
	a.profile.SetBio(ctx, text)
	return nil
}

func (a *App) SetWebsite(ctx context.Context, website string) error {
	a.profile.SetWebsite(ctx, website)
	return nil
}

func (a *App) SetSocial(ctx context.Context, network, handle string) error {
	if !a.profile.SetSocial(ctx, strings.ToLower(network), handle) {
		a.println("Usage: social <linkedin|github|instagram|twitter> <handle>")
		return errInput
	}
	return nil
}
