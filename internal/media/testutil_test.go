package media

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// MPEG-1 Layer III, 128 kbit/s, 44.1 kHz, no CRC, no padding
var mp3FrameHeader = []byte{0xFF, 0xFB, 0x90, 0x00}

const (
	mp3FrameSize    = 417
	mp3FrameSamples = 1152
	mp3SampleRate   = 44100
)

// writeMP3 writes a file made of n silent frames
func writeMP3(t *testing.T, name string, n int) string {
	t.Helper()

	frame := make([]byte, mp3FrameSize)
	copy(frame, mp3FrameHeader)

	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		buf.Write(frame)
	}
	return writeFile(t, name, buf.Bytes())
}

// writeM4A writes ftyp + moov/mvhd(v0) with the given timescale and duration
func writeM4A(t *testing.T, name string, timescale, duration uint32) string {
	t.Helper()

	var buf bytes.Buffer
	be := binary.BigEndian

	// ftyp
	_ = binary.Write(&buf, be, uint32(20))
	buf.WriteString("ftyp")
	buf.WriteString("M4A ")
	_ = binary.Write(&buf, be, uint32(0))
	buf.WriteString("M4A ")

	// moov > mvhd
	const mvhdPayload = 100
	_ = binary.Write(&buf, be, uint32(8+8+mvhdPayload))
	buf.WriteString("moov")
	_ = binary.Write(&buf, be, uint32(8+mvhdPayload))
	buf.WriteString("mvhd")

	payload := make([]byte, mvhdPayload)
	// version/flags, creation, modification left zero
	be.PutUint32(payload[12:16], timescale)
	be.PutUint32(payload[16:20], duration)
	be.PutUint32(payload[20:24], 0x00010000) // rate 1.0
	be.PutUint16(payload[24:26], 0x0100)     // volume 1.0
	be.PutUint32(payload[96:100], 2)         // next track id
	buf.Write(payload)

	return writeFile(t, name, buf.Bytes())
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
