package frontmark

import "github.com/goliatone/go-frontmark/internal/runtimeconfig"

var (
	ErrLoggingLevelInvalid  = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid = runtimeconfig.ErrLoggingFormatInvalid
	ErrExtensionNameEmpty   = runtimeconfig.ErrExtensionNameEmpty
)

type (
	Config        = runtimeconfig.Config
	RenderConfig  = runtimeconfig.RenderConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

// MetaExtension is the baseline header-metadata extension, force enabled on
// every render engine.
const MetaExtension = runtimeconfig.MetaExtension

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
