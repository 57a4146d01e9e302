// Package config loads wordmatch settings from TOML.
//
// Resolution order: an explicit --config path, then
// ~/.config/wordmatch/config.toml, then ./wordmatch.toml. When none exists the
// defaults apply. Values in [match] are defaults only; flags that are set on
// the command line win.
package config
