// Package engine drives a container engine (docker or podman) through its
// command-line interface.
//
// zmkenv deliberately shells out to the engine binary rather than speaking
// to a daemon API: the tool must drive whichever of the two engines is
// installed with identical semantics, and the volume/build/run behavior is
// owned by the engine, not by this tool.
//
// The package provides:
//   - Detect: resolve which engine binary is installed. docker is checked
//     first, podman second; podman overrides docker when both are present.
//   - Engine: the operation surface the bootstrap needs — remove/create a
//     volume, build an image, run an interactive session.
//   - BaseCLIEngine: the shared CLI implementation both engines embed, with
//     an injectable exec function so tests never need an engine installed.
package engine
