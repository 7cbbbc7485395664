// Package config manages the vimterm YAML configuration file.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/vimterm/config.yaml or $HOME/.config/vimterm/config.yaml
//   - macOS: $HOME/.config/vimterm/config.yaml
//   - Windows: %LOCALAPPDATA%\vimterm\config.yaml
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	cfg.Explorer.Columns = 1
//	if err := cfg.Save(); err != nil {
//	    return err
//	}
//
// A missing file is not an error: Load returns Default. Saves go through a
// temporary file and a rename.
package config
