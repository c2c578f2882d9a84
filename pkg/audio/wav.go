package audio

import (
	"bytes"
	"encoding/binary"
	"time"
)

const (
	wavHeaderSize  = 44
	bitsPerSample  = 16
	ContentTypeWAV = "audio/wav"
)

// EncodeWAV wraps raw s16le PCM samples in a RIFF/WAVE container.
func EncodeWAV(pcm []byte, c Constraints) []byte {
	channels := c.ChannelCount
	if channels <= 0 {
		channels = 1
	}
	blockAlign := channels * bitsPerSample / 8
	byteRate := c.SampleRate * blockAlign

	buf := bytes.NewBuffer(make([]byte, 0, wavHeaderSize+len(pcm)))
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(c.SampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}

// pcmDuration returns how long len(pcm) bytes of audio last under c.
func pcmDuration(n int, c Constraints) time.Duration {
	channels := c.ChannelCount
	if channels <= 0 {
		channels = 1
	}
	bytesPerSec := c.SampleRate * channels * bitsPerSample / 8
	if bytesPerSec == 0 {
		return 0
	}
	return time.Duration(n) * time.Second / time.Duration(bytesPerSec)
}
