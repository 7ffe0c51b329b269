package abb

// Byte-count unit constants, standing in for the original's _B/_KiB/_MiB/...
// literal suffixes (Go has no user-defined numeric literal operators).
const (
	B   uintptr = 1
	KiB         = 1024 * B
	MiB         = 1024 * KiB
	GiB         = 1024 * MiB

	KB uintptr = 1000
	MB         = 1000 * KB
	GB         = 1000 * MB
)
