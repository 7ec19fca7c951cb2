package engine

// DockerEngine implements the Engine interface using the docker CLI.
// It embeds BaseCLIEngine for all operations.
type DockerEngine struct {
	*BaseCLIEngine
}

// NewDockerEngine creates a docker engine around the given binary path.
func NewDockerEngine(binaryPath string, opts ...Option) *DockerEngine {
	return &DockerEngine{
		BaseCLIEngine: NewBaseCLIEngine("docker", binaryPath, opts...),
	}
}
