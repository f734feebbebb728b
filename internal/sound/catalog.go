// Package sound resolves and plays toast notification sounds.
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Bundled catalog names, resolved to files under the user data directory.
const (
	Beep1         = "beep1"
	Confirmation1 = "confirmation1"
	Confirmation2 = "confirmation2"
)

// catalog lists the bundled sound names in display order.
var catalog = []string{Beep1, Confirmation1, Confirmation2}

// recognizedExtensions contains the audio file extensions accepted for
// user-supplied sound paths. Validation accepts a wider set than the
// player decodes (wav/ogg/mp3/flac); a recognized but undecodable format
// is valid configuration and surfaces as a playback error, not a
// rejected toast.
var recognizedExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".ogg":  true,
	".flac": true,
	".aiff": true,
	".aif":  true,
	".m4a":  true,
}

// Catalog returns the bundled sound names.
func Catalog() []string {
	return slices.Clone(catalog)
}

// IsCatalogName reports whether name is a bundled catalog sound.
func IsCatalogName(name string) bool {
	return slices.Contains(catalog, name)
}

// RecognizedExtension reports whether path carries an accepted audio
// file extension.
func RecognizedExtension(path string) bool {
	return recognizedExtensions[strings.ToLower(filepath.Ext(path))]
}

// DataDir returns the directory holding bundled sound files.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "toasthud", "sounds")
}

// Validate checks a sound reference the way the parameter validator needs:
// an absolute path must exist, be a regular file, and carry a recognized
// audio extension; anything else must be a bundled catalog name.
func Validate(ref string) error {
	if ref == "" {
		return nil
	}

	if filepath.IsAbs(ref) {
		info, err := os.Stat(ref)
		if err != nil {
			return fmt.Errorf("sound file not found: %s", ref)
		}
		if info.IsDir() {
			return fmt.Errorf("sound path is a directory, not a file: %s", ref)
		}
		if !RecognizedExtension(ref) {
			return fmt.Errorf("unsupported audio format %q for sound file %s", filepath.Ext(ref), ref)
		}
		return nil
	}

	if !IsCatalogName(ref) {
		return fmt.Errorf("unknown sound %q, must be an absolute file path or one of: %s",
			ref, strings.Join(catalog, ", "))
	}
	return nil
}

// Resolve maps a validated sound reference to a playable file path.
// Catalog names resolve to <data dir>/<name>.wav.
func Resolve(ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	if filepath.IsAbs(ref) {
		if err := Validate(ref); err != nil {
			return "", err
		}
		return ref, nil
	}
	if !IsCatalogName(ref) {
		return "", fmt.Errorf("unknown sound %q", ref)
	}
	return filepath.Join(DataDir(), ref+".wav"), nil
}
