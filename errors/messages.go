package errors

var messages = map[Errno]string{
	// Cartridge
	InvalidRom:     "invalid rom image (%s)",
	UnsupportedMbc: "unsupported cartridge type (%#02x)",
	BadBatteryFile: "battery file size does not match cartridge ram size (got %d, want %d)",

	// CPU
	UnsupportedOpcode: "unsupported opcode (%#02x) at (%#04x)",

	// Machine state
	InvalidState: "operation not valid in current state (%s)",
}
