// Package installer downloads the pinned FreeCAD installer artifact and
// runs it as a blocking child process. A failed download is recoverable:
// the caller prints manual-install guidance and the run continues.
package installer

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cadbridge/fcsetup/pkg/config"
	"github.com/cadbridge/fcsetup/pkg/errors"
	"github.com/cadbridge/fcsetup/pkg/logging"
)

// Installer fetches and runs the platform installer artifact
type Installer struct {
	cfg config.InstallerConfig

	// Client is the HTTP client used for the download. Overridable in
	// tests; defaults to a client bounded by the configured timeout.
	Client *http.Client

	// TempDir is where the artifact is written. Defaults to os.TempDir.
	TempDir string
}

// New creates an Installer for the given configuration
func New(cfg config.InstallerConfig) *Installer {
	return &Installer{
		cfg:     cfg,
		Client:  &http.Client{Timeout: cfg.Timeout},
		TempDir: os.TempDir(),
	}
}

// DownloadAndRun fetches the installer to a temporary path and launches
// it, waiting for the process to exit. The child's exit code is logged
// but not consulted: the subsequent probe is the source of truth for
// whether the install took.
func (i *Installer) DownloadAndRun() error {
	dest, err := i.Download()
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(dest)
	}()

	return i.Run(dest)
}

// Download fetches the configured artifact into the temp directory and
// returns the file path. There are no retries and no resume; the
// artifact is fetched at most once per run.
func (i *Installer) Download() (string, error) {
	logger := logging.GetLogger("installer")

	name, err := artifactName(i.cfg.URL)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(i.TempDir, name)

	logger.Info().Str("url", i.cfg.URL).Str("dest", dest).Msg("Downloading installer")

	resp, err := i.Client.Get(i.cfg.URL)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDownload, "failed to download %s", i.cfg.URL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf(errors.ErrDownload, "unexpected status %s fetching %s", resp.Status, i.cfg.URL)
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0755)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDownload, "cannot create %s", dest)
	}

	written, err := io.Copy(out, resp.Body)
	closeErr := out.Close()
	if err != nil {
		_ = os.Remove(dest)
		return "", errors.Wrapf(err, errors.ErrDownload, "download of %s interrupted", i.cfg.URL)
	}
	if closeErr != nil {
		_ = os.Remove(dest)
		return "", errors.Wrapf(closeErr, errors.ErrDownload, "cannot finalize %s", dest)
	}

	logger.Info().Int64("bytes", written).Str("dest", dest).Msg("Download complete")
	return dest, nil
}

// Run launches the installer and blocks until it exits. Failure to start
// the process is an error; a non-zero exit is logged and tolerated.
func (i *Installer) Run(artifact string) error {
	logger := logging.GetLogger("installer")

	cmd := launchCommand(artifact)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Info().Str("artifact", artifact).Msg("Launching installer, waiting for it to finish")

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, errors.ErrInstallerRun, "cannot launch installer %s", artifact)
	}

	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			logger.Warn().Int("exitCode", exitErr.ExitCode()).Msg("Installer exited non-zero")
			return nil
		}
		return errors.Wrap(err, errors.ErrInstallerRun, "installer did not run to completion")
	}

	logger.Info().Msg("Installer finished")
	return nil
}

// ManualGuidance returns the text shown when the download fails: the
// pinned release page plus the weekly-build bundle as a fallback.
func (i *Installer) ManualGuidance() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Automatic download failed. Install FreeCAD manually:\n")
	fmt.Fprintf(&b, "  Release:      %s\n", i.cfg.ReleasePage)
	fmt.Fprintf(&b, "  Direct link:  %s\n", i.cfg.URL)
	fmt.Fprintf(&b, "  Weekly build: %s\n", i.cfg.FallbackURL)
	fmt.Fprintf(&b, "Then rerun fcsetup to link the workbenches.")
	return b.String()
}

func artifactName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDownload, "invalid installer URL %q", rawURL)
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", errors.Newf(errors.ErrDownload, "installer URL %q has no artifact name", rawURL)
	}
	return name, nil
}

// launchCommand builds the platform invocation for the artifact. Windows
// installers and Linux AppImages execute directly; macOS disk images go
// through open -W so the call still blocks until dismissed.
func launchCommand(artifact string) *exec.Cmd {
	if runtime.GOOS == "darwin" && strings.HasSuffix(artifact, ".dmg") {
		return exec.Command("open", "-W", artifact)
	}
	return exec.Command(artifact)
}
