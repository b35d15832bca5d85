// Package sampleio reads demodulated C4FM baseband samples from a WAV
// file or a raw stream for feeding into a P25 message receiver.
package sampleio

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVSource reads baseband samples from a mono PCM WAV file, scaling
// each sample to the [-1, 1] range a p25baseband decoder expects.
type WAVSource struct {
	decoder *wav.Decoder
	buf     *audio.IntBuffer
	pos     int
	scale   float64
}

// OpenWAV opens a WAV source for reading. The file must be PCM-encoded
// and single-channel.
func OpenWAV(r io.ReadSeeker) (*WAVSource, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("sampleio: not a valid wav file")
	}
	decoder.ReadInfo()
	if decoder.NumChans != 1 {
		return nil, fmt.Errorf("sampleio: expected mono audio, got %d channels", decoder.NumChans)
	}

	bitDepth := int(decoder.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}

	return &WAVSource{
		decoder: decoder,
		scale:   1 << (bitDepth - 1),
	}, nil
}

// SampleRate returns the file's sample rate in Hz.
func (s *WAVSource) SampleRate() int { return int(s.decoder.SampleRate) }

// Next returns the next baseband sample, or ok=false at end of stream.
func (s *WAVSource) Next() (float64, error, bool) {
	if s.buf == nil || s.pos >= len(s.buf.Data) {
		buf := &audio.IntBuffer{Data: make([]int, 4096), Format: s.decoder.Format()}
		n, err := s.decoder.PCMBuffer(buf)
		if err != nil {
			return 0, err, false
		}
		if n == 0 {
			return 0, nil, false
		}
		buf.Data = buf.Data[:n]
		s.buf = buf
		s.pos = 0
	}

	v := float64(s.buf.Data[s.pos]) / s.scale
	s.pos++
	return v, nil, true
}
