package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/totemkb/zmkenv/internal/devcontainer"
	"github.com/totemkb/zmkenv/internal/engine"
	"github.com/totemkb/zmkenv/internal/model"
	"github.com/totemkb/zmkenv/internal/port"
	"github.com/totemkb/zmkenv/internal/progress"
	"github.com/totemkb/zmkenv/internal/repo"
	"github.com/totemkb/zmkenv/internal/workspace"
	"github.com/totemkb/zmkenv/internal/zmkconfig"
)

// bootstrapEnv bundles the collaborators of one bootstrap run so the
// sequence itself is testable with a fake engine and a temp workspace.
type bootstrapEnv struct {
	ws   *workspace.Workspace
	eng  engine.Engine
	repo *repo.Provisioner

	// out receives status lines and progress bars.
	out io.Writer

	// stdin/stdout/stderr are wired through to the interactive session.
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// runUp resolves the run's collaborators and executes the sequence.
func runUp(ctx context.Context) error {
	eng, err := engine.Detect(engine.WithLogger(logger))
	if err != nil {
		if errors.Is(err, engine.ErrNoEngine) {
			fmt.Fprintf(os.Stderr, "%s This tool requires either %s or %s to be installed. Please install either, then retry\n",
				iconError, boldStyle.Render("podman"), boldStyle.Render("docker"))
			// Curated message already printed; carry only the exit code.
			return model.NewCLIError(model.ExitFailure, "")
		}
		return model.WrapCLIError(model.ExitFailure, "failed to resolve container engine", err)
	}

	ws, err := workspace.Resolve()
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to resolve workspace", err)
	}

	env := &bootstrapEnv{
		ws:     ws,
		eng:    eng,
		repo:   repo.NewProvisioner(model.RepoURL),
		out:    os.Stdout,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	return env.run(ctx)
}

// run executes the bootstrap sequence against resolved collaborators:
// config inspected, repo ready, build dir ready, volume recreated, image
// built, usage guide printed, interactive session run. The sequence is
// strictly linear and stops at the first failing step; only volume removal
// is best-effort, since removing an absent volume is the expected case on
// a first run.
func (b *bootstrapEnv) run(ctx context.Context) error {
	fmt.Fprintf(b.out, "%s Found %s as container engine\n", iconSuccess, boldStyle.Render(b.eng.Name()))

	b.inspectConfig()

	if err := b.ensureRepo(ctx); err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to provision ZMK repository", err)
	}

	if err := b.ensureBuildDir(); err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to provision build directory", err)
	}

	if err := b.recreateVolume(ctx); err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to recreate config volume", err)
	}

	if err := b.buildImage(ctx); err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to build container image", err)
	}

	printUsageGuide(b.out)

	if err := b.runSession(ctx); err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to launch container session", err)
	}
	return nil
}

// inspectConfig reports on the user-managed config directory. Advisory
// only: the directory is never created or modified, and nothing here can
// abort the run.
func (b *bootstrapEnv) inspectConfig() {
	report, err := zmkconfig.Inspect(b.ws.ConfigDir())
	if err != nil {
		logger.Warn("config manifest is unreadable", "err", err)
		return
	}

	switch {
	case !report.DirExists:
		logger.Warn("config directory not found; the volume bind will point at a missing path",
			"path", b.ws.ConfigDir())
	case !report.ManifestFound:
		logger.Warn("config directory has no west manifest", "expected", zmkconfig.ManifestName)
	default:
		for _, p := range report.Projects {
			logger.Debug("config manifest project", "name", p.Name, "revision", p.Revision)
		}
	}
}

// ensureRepo makes sure the ZMK checkout exists, cloning it with a
// progress bar when absent.
func (b *bootstrapEnv) ensureRepo(ctx context.Context) error {
	if b.ws.RepoExists() {
		fmt.Fprintf(b.out, "%s ZMK git repo directory exists\n", iconSuccess)
		return nil
	}

	bar := progress.NewBar(b.out, iconPending+" Cloning ZMK git repo:", 0)
	_, err := b.repo.Ensure(ctx, b.ws.RepoDir(), bar)
	bar.Finish()
	if err != nil {
		return err
	}

	fmt.Fprintf(b.out, "%s Cloned ZMK git repo\n", iconSuccess)
	return nil
}

// ensureBuildDir provisions the build output directory.
func (b *bootstrapEnv) ensureBuildDir() error {
	created, err := b.ws.EnsureBuildDir()
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(b.out, "%s Created build directory\n", iconSuccess)
	} else {
		fmt.Fprintf(b.out, "%s Build directory exists\n", iconSuccess)
	}
	return nil
}

// recreateVolume destroys and recreates the config volume so its bind
// device always points at the current base directory. Removal runs first,
// is forced, and its failure is ignored — the volume usually does not
// exist. Creation must not be attempted before removal, since a leftover
// volume cannot be duplicated under the same name.
func (b *bootstrapEnv) recreateVolume(ctx context.Context) error {
	bar := progress.NewBar(b.out, iconPending+" Recreating container volume:", 2)

	if err := b.eng.RemoveVolume(ctx, model.VolumeName, true); err != nil {
		logger.Debug("volume removal ignored", "volume", model.VolumeName, "err", err)
	}
	bar.Step()

	err := b.eng.CreateVolume(ctx, engine.VolumeOptions{
		Name:   model.VolumeName,
		Driver: "local",
		DriverOpts: []string{
			"o=bind",
			"type=none",
			"device=" + b.ws.ConfigDir(),
		},
	})
	bar.Step()
	bar.Finish()
	if err != nil {
		return err
	}

	fmt.Fprintf(b.out, "%s Recreated container volume: %s\n", iconSuccess, boldStyle.Render(model.VolumeName))
	return nil
}

// buildImage rebuilds the dev-container image from the checkout's
// .devcontainer Dockerfile. The image is rebuilt unconditionally; layer
// caching is the engine's concern.
func (b *bootstrapEnv) buildImage(ctx context.Context) error {
	spec := devcontainer.ResolveBuild(b.ws.RepoDir())

	bar := progress.NewBar(b.out, iconPending+" Building container image:", 1)
	err := b.eng.Build(ctx, engine.BuildOptions{
		Dockerfile: spec.Dockerfile,
		ContextDir: spec.ContextDir,
		Tag:        model.ImageTag,
	})
	bar.Step()
	bar.Finish()
	if err != nil {
		return err
	}

	fmt.Fprintf(b.out, "%s Built container image: %s\n", iconSuccess, boldStyle.Render(model.ImageTag))
	return nil
}

// runSession launches the interactive build shell with the three mounts
// and the published port, blocking until the user exits. A non-zero shell
// exit is not a tool failure — the run completed.
func (b *bootstrapEnv) runSession(ctx context.Context) error {
	// Both engines abort the run when the published host port is taken,
	// with an error that does not point at the port. Warn up front; the
	// launch still proceeds so the engine has the final say.
	if hostPort, err := port.HostPort(model.SessionPort); err == nil && !port.Available(hostPort) {
		logger.Warn("session host port is already in use; the engine may refuse to start",
			"port", hostPort)
	}

	res, err := b.eng.RunInteractive(ctx, engine.RunOptions{
		Image:   model.ImageTag,
		Command: []string{model.SessionShell},
		WorkDir: model.RepoMountPath,
		Volumes: []string{
			b.ws.RepoDir() + ":" + model.RepoMountPath,
			model.VolumeName + ":" + model.ConfigMountPath,
			b.ws.BuildDir() + ":" + model.BuildMountPath,
		},
		Ports:        []string{model.SessionPort},
		SecurityOpts: []string{"label=disable"},
		Interactive:  true,
		TTY:          true,
		Remove:       true,
		Stdin:        b.stdin,
		Stdout:       b.stdout,
		Stderr:       b.stderr,
	})
	if err != nil {
		return err
	}

	if res.ExitCode != 0 {
		logger.Debug("session shell exited non-zero", "code", res.ExitCode)
	}
	return nil
}
