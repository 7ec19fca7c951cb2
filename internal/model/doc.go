// Package model defines the domain constants and value objects for the
// zmkenv CLI.
//
// This package contains pure data with no external dependencies: the fixed
// identifiers of the bootstrap environment (repository URL, directory names,
// volume name, image tag, in-container mount points) and the error plumbing
// (ExitCode, CLIError) that carries process exit codes from any component up
// to the command layer.
//
// Every identifier of the environment is fixed by design — zmkenv reads no
// configuration, flags, or environment variables. Changing any of these
// constants changes the tool's external contract.
package model
