package game

import "squaresships/config"

// Environment variables read by ConfigFromEnv
const (
	EnvAssets     = "SQUARES_ASSETS"
	EnvSeed       = "SQUARES_SEED"
	EnvMute       = "SQUARES_MUTE"
	EnvProfileDir = "SQUARES_PROFILE_DIR"
)

// ConfigFromEnv returns the default configuration with runtime overrides
// taken from the environment. Gameplay constants are not overridable.
func ConfigFromEnv() Config {
	c := DefaultConfig()
	c.AssetDir = config.GetEnv(EnvAssets, c.AssetDir)
	c.Seed = config.GetEnvInt(EnvSeed, c.Seed)
	c.Mute = config.GetEnvBool(EnvMute, c.Mute)
	c.ProfileDir = config.GetEnv(EnvProfileDir, c.ProfileDir)
	return c
}
