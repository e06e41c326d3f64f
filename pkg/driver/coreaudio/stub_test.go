//go:build !darwin || !cgo

package coreaudio

const native = false
