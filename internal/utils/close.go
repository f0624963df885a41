package utils

import (
	"io"

	"github.com/khulnasoft/startpage/internal/logger"
)

// MustClose closes c and logs any error under name.
func MustClose(c io.Closer, name string, log logger.Logger) {
	if err := c.Close(); err != nil {
		log.Warn("failed to close", logger.String("resource", name), logger.Error(err))
		return
	}
	log.Debug("closed", logger.String("resource", name))
}
