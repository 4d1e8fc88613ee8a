package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"golang.org/x/image/bmp"
)

func TestGenerate(t *testing.T) {
	b, err := Generate(SampleRate)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	checkBundle(t, b)

	if got := b.Ship.Bounds().Size(); got != image.Pt(32, 32) {
		t.Errorf("Expected 32x32 ship, got %v", got)
	}
	if got := b.Bullet.Bounds().Size(); got != image.Pt(6, 16) {
		t.Errorf("Expected 6x16 bullet, got %v", got)
	}
	for i, img := range b.Enemies {
		if got := img.Bounds().Size(); got != image.Pt(26, 20) {
			t.Errorf("enemy %d: expected 26x20, got %v", i, got)
		}
	}
	for i, img := range b.EnemyExplosion {
		if got := img.Bounds().Size(); got != image.Pt(64, 64) {
			t.Errorf("enemy explosion %d: expected 64x64, got %v", i, got)
		}
	}
}

func TestLoadEmptyDirGenerates(t *testing.T) {
	b, err := Load("", SampleRate)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkBundle(t, b)
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	writeAssetDir(t, dir)

	b, err := Load(dir, SampleRate)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkBundle(t, b)

	if got := b.Ship.Bounds().Size(); got != image.Pt(32, 32) {
		t.Errorf("Expected ship from disk, got size %v", got)
	}
	// bullet.png is used when bullet.bmp is missing
	if got := b.Bullet.Bounds().Size(); got != image.Pt(6, 16) {
		t.Errorf("Expected bullet from png, got size %v", got)
	}

	// Same rate: one stereo frame per mono input sample
	if len(b.FireSound) != 441*4 {
		t.Errorf("Expected %d bytes of fire sound, got %d", 441*4, len(b.FireSound))
	}

	// 22050 Hz resampled to 44100 Hz doubles the frame count
	frames := len(b.PlayerDeathSound) / 4
	if frames < 4300 || frames > 4500 {
		t.Errorf("Expected about 4410 resampled frames, got %d", frames)
	}
}

func TestLoadMissingSprite(t *testing.T) {
	dir := t.TempDir()
	writeAssetDir(t, dir)
	if err := os.Remove(filepath.Join(dir, "sprites", "enemy3.bmp")); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir, SampleRate)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestLoadMissingSound(t *testing.T) {
	dir := t.TempDir()
	writeAssetDir(t, dir)
	if err := os.Remove(filepath.Join(dir, "audio", "enemy_death.wav")); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir, SampleRate)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestLoadCorruptSound(t *testing.T) {
	dir := t.TempDir()
	writeAssetDir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "audio", "bullet.wav"), []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir, SampleRate); err == nil {
		t.Error("Expected a decode error")
	}
}

func checkBundle(t *testing.T, b *Bundle) {
	t.Helper()
	if b.Ship == nil || b.Bullet == nil {
		t.Fatal("Missing ship or bullet sprite")
	}
	if len(b.Enemies) != EnemyVariants {
		t.Errorf("Expected %d enemy sprites, got %d", EnemyVariants, len(b.Enemies))
	}
	if len(b.EnemyExplosion) != EnemyExplosionFrames {
		t.Errorf("Expected %d enemy explosion frames, got %d", EnemyExplosionFrames, len(b.EnemyExplosion))
	}
	if len(b.PlayerExplosion) != PlayerExplosionFrames {
		t.Errorf("Expected %d player explosion frames, got %d", PlayerExplosionFrames, len(b.PlayerExplosion))
	}
	for name, pcm := range map[string][]byte{
		"fire":         b.FireSound,
		"enemy death":  b.EnemyDeathSound,
		"player death": b.PlayerDeathSound,
	} {
		if len(pcm) == 0 || len(pcm)%4 != 0 {
			t.Errorf("%s: bad PCM length %d", name, len(pcm))
		}
	}
	if b.SampleRate != SampleRate {
		t.Errorf("Expected sample rate %d, got %d", SampleRate, b.SampleRate)
	}
}

// writeAssetDir lays out a complete asset directory with small fixtures
func writeAssetDir(t *testing.T, dir string) {
	t.Helper()
	sprites := filepath.Join(dir, "sprites")
	audio := filepath.Join(dir, "audio")
	for _, d := range []string{sprites, audio} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	writeBMP(t, filepath.Join(sprites, "ship.bmp"), 32, 32)
	writePNG(t, filepath.Join(sprites, "bullet.png"), 6, 16)
	for i := 0; i < EnemyVariants; i++ {
		writeBMP(t, filepath.Join(sprites, "enemy"+strconv.Itoa(i)+".bmp"), 26, 20)
	}
	for i := 0; i < EnemyExplosionFrames; i++ {
		writeBMP(t, filepath.Join(sprites, "enemy_explosion"+strconv.Itoa(i)+".bmp"), 64, 64)
	}
	for i := 0; i < PlayerExplosionFrames; i++ {
		writeBMP(t, filepath.Join(sprites, "player_explosion"+strconv.Itoa(i)+".bmp"), 62, 60)
	}

	writeWAV(t, filepath.Join(audio, "bullet.wav"), 44100, 441)
	writeWAV(t, filepath.Join(audio, "enemy_death.wav"), 44100, 4410)
	writeWAV(t, filepath.Join(audio, "player_death.wav"), 22050, 2205)
}

func fixtureImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}
	return img
}

func writeBMP(t *testing.T, path string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, fixtureImage(w, h)); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, fixtureImage(w, h)); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

// writeWAV writes a mono 16-bit PCM file holding a quiet ramp
func writeWAV(t *testing.T, path string, rate, samples int) {
	t.Helper()
	data := make([]byte, 0, samples*2)
	for i := 0; i < samples; i++ {
		data = binary.LittleEndian.AppendUint16(data, uint16(int16(i%200*50)))
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, struct {
		Size          uint32
		Format        uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}{16, 1, 1, uint32(rate), uint32(rate * 2), 2, 16})
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}
