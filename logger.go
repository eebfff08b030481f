package speakify

import (
	"log"
	"os"
)

// Logger is the package-wide logger, used for dictionary-merge
// rejections and other diagnostics.
var Logger = log.New(os.Stderr, "[speakify] ", log.LstdFlags)

// SetLogger installs a custom logger.
func SetLogger(logger *log.Logger) {
	Logger = logger
}
