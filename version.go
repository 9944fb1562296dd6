package lamc

// Version and BuildDate identify the build; release builds override them via
// -ldflags "-X".
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)
