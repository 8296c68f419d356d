// Package config holds the naming convention and user settings.
//
// It handles:
//   - The WEBCHAN ticket convention and its allowed branch and commit types
//   - Prompt templates derived from the convention
//   - User settings for logging and color, read from YAML and the environment
package config
