package engine

// PodmanEngine implements the Engine interface using the podman CLI.
// It embeds BaseCLIEngine for all operations.
//
// The interactive session runs with --security-opt label=disable (set by the
// caller), so no per-mount SELinux relabeling is needed on podman hosts.
type PodmanEngine struct {
	*BaseCLIEngine
}

// NewPodmanEngine creates a podman engine around the given binary path.
func NewPodmanEngine(binaryPath string, opts ...Option) *PodmanEngine {
	return &PodmanEngine{
		BaseCLIEngine: NewBaseCLIEngine("podman", binaryPath, opts...),
	}
}
