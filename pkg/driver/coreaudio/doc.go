// Package coreaudio exposes the CoreAudio hardware abstraction layer as a
// driver.Service. On darwin with cgo it registers itself in driver.GetManager
// with the highest priority; otherwise the package is an empty stub.
package coreaudio
