package errors

// list of error numbers
const (
	// Cartridge
	InvalidRom Errno = iota
	UnsupportedMbc
	BadBatteryFile

	// CPU
	UnsupportedOpcode

	// Machine state
	InvalidState
)
