package consts

const Version = "1.0.0"

// set at build time with -ldflags
var (
	BuildTime string
	GitTag    string
)
