package sound

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayAndWait_EmptyPathIsNoop(t *testing.T) {
	p := NewPlayer(nil)
	assert.NoError(t, p.PlayAndWait(""))
}

func TestPlayAndWait_MissingFile(t *testing.T) {
	p := NewPlayer(nil)
	err := p.PlayAndWait(filepath.Join(t.TempDir(), "gone.wav"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open sound file")
}

func TestPlayAndWait_RecognizedButUndecodableFormat(t *testing.T) {
	// Validation accepts .aiff, but the decoder set does not include it;
	// the gap must surface as a clear playback error.
	dir := t.TempDir()
	path := filepath.Join(dir, "chime.aiff")
	require.NoError(t, os.WriteFile(path, []byte("FORM"), 0644))

	require.NoError(t, Validate(path))

	p := NewPlayer(nil)
	err := p.PlayAndWait(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported audio format for playback")
}

func TestSetVolume_Clamps(t *testing.T) {
	p := NewPlayer(nil)

	p.SetVolume(1.5)
	assert.Equal(t, 1.0, p.volume)

	p.SetVolume(-0.5)
	assert.Equal(t, 0.0, p.volume)
}

func TestVolumeToDecibels(t *testing.T) {
	assert.Equal(t, 0.0, volumeToDecibels(1.0))
	assert.InDelta(t, -6.02, volumeToDecibels(0.5), 0.01)
	assert.Equal(t, -100.0, volumeToDecibels(0))
}
