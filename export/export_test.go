package export_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/vsariola/bloop"
	"github.com/vsariola/bloop/export"
	"github.com/vsariola/bloop/instrument"
)

var second = bloop.FromSeconds(1)

// tune is one second of amplitude 100 followed by one second of silence.
func tune() bloop.Music {
	return bloop.Seq(
		bloop.Prim(bloop.Note(second, instrument.Constant(100))),
		bloop.Prim(bloop.Rest(second)),
	)
}

func TestRender(t *testing.T) {
	f := bloop.Format{Channels: 2, SampleRate: 8000, Encoding: bloop.EncodingInt16}
	buffer, err := export.Render(tune(), 2*second, f)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(buffer) != 2*8000*2 {
		t.Fatalf("rendered %d samples, want %d", len(buffer), 2*8000*2)
	}
	// frame i is sampled at (i+1)/8000 s; frame 7999 is exactly at 1 s and
	// still belongs to the note
	if buffer[2*7999] != 0.78125 || buffer[2*7999+1] != 0.78125 {
		t.Errorf("last note frame = %v, %v; want 0.78125", buffer[2*7999], buffer[2*7999+1])
	}
	if buffer[2*8000] != 0 {
		t.Errorf("first rest frame = %v, want 0", buffer[2*8000])
	}
	levels := export.Measure(buffer)
	if levels.Peak != 0.78125 {
		t.Errorf("Peak = %v, want 0.78125", levels.Peak)
	}
	if want := 0.78125 / math.Sqrt2; math.Abs(float64(levels.RMS)-want) > 1e-4 {
		t.Errorf("RMS = %v, want %v", levels.RMS, want)
	}
}

func TestMeasureEmpty(t *testing.T) {
	if got := export.Measure(nil); got != (export.Levels{}) {
		t.Errorf("Measure(nil) = %+v", got)
	}
}

func TestRaw(t *testing.T) {
	f := bloop.Format{Channels: 1, SampleRate: 8000, Encoding: bloop.EncodingInt16}
	var buf bytes.Buffer
	if err := export.Raw(&buf, tune(), second/2, f); err != nil {
		t.Fatalf("Raw failed: %v", err)
	}
	if buf.Len() != 4000*2 {
		t.Fatalf("Raw wrote %d bytes, want %d", buf.Len(), 4000*2)
	}
	samples := make([]int16, 4000)
	if err := binary.Read(&buf, binary.LittleEndian, samples); err != nil {
		t.Fatal(err)
	}
	for i, v := range samples {
		if v != 25599 {
			t.Fatalf("sample %d = %d, want 25599", i, v)
		}
	}
}

func TestRawRejectsEncoding(t *testing.T) {
	f := bloop.Format{Channels: 1, SampleRate: 8000}
	if err := export.Raw(&bytes.Buffer{}, tune(), second, f); !errors.Is(err, bloop.ErrUnsupportedEncoding) {
		t.Errorf("expected ErrUnsupportedEncoding, got %v", err)
	}
}

func TestWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.wav")
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := export.Wav(out, tune(), 2*second, 8000, 2); err != nil {
		t.Fatalf("Wav failed: %v", err)
	}
	out.Close()

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	streamer, format, err := wav.Decode(in)
	if err != nil {
		t.Fatalf("could not decode the written file: %v", err)
	}
	defer streamer.Close()
	if format.SampleRate != 8000 || format.NumChannels != 2 || format.Precision != 2 {
		t.Errorf("format = %+v", format)
	}
	if streamer.Len() != 16000 {
		t.Errorf("Len() = %d, want 16000", streamer.Len())
	}
	// beep's decoder scales 16-bit data by 1/65535, so the PCM is checked
	// directly: the data chunk follows the 44-byte header
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" || string(data[36:40]) != "data" {
		t.Fatalf("unexpected header % x", data[:44])
	}
	pcm := make([]int16, (len(data)-44)/2)
	if err := binary.Read(bytes.NewReader(data[44:]), binary.LittleEndian, pcm); err != nil {
		t.Fatal(err)
	}
	if len(pcm) != 2*16000 {
		t.Fatalf("data chunk has %d samples, want %d", len(pcm), 2*16000)
	}
	if pcm[2*100] != 25599 || pcm[2*100+1] != 25599 {
		t.Errorf("note frame = %v, want 25599 on both sides", pcm[2*100:2*100+2])
	}
	if pcm[2*12000] != 0 || pcm[2*12000+1] != 0 {
		t.Errorf("rest frame = %v, want 0", pcm[2*12000:2*12000+2])
	}
}

func TestStreamerEnds(t *testing.T) {
	s, err := export.Streamer(instrument.Constant(64), 8000, second/1000)
	if err != nil {
		t.Fatal(err)
	}
	samples := make([][2]float64, 20)
	n, ok := s.Stream(samples)
	if n != 8 || !ok {
		t.Fatalf("Stream = %d, %v; want 8, true", n, ok)
	}
	if samples[0] != [2]float64{0.5, 0.5} {
		t.Errorf("frame 0 = %v", samples[0])
	}
	if n, ok := s.Stream(samples); n != 0 || ok {
		t.Errorf("Stream after the end = %d, %v; want 0, false", n, ok)
	}
	var _ beep.Streamer = s
}
