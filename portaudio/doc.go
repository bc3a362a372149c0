// Package portaudio plays bloop samplers through PortAudio. It needs cgo and
// the PortAudio library, so the backend is only built with the portaudio
// build tag; without it the package is empty.
package portaudio
