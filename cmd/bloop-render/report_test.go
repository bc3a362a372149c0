package main

import (
	"strings"
	"testing"

	"github.com/vsariola/bloop"
	"github.com/vsariola/bloop/export"
)

func TestReport(t *testing.T) {
	m, err := beep(0.5)
	if err != nil {
		t.Fatal(err)
	}
	r := report{
		Name:     "beep",
		Music:    m,
		Duration: m.Duration(),
		Format:   bloop.Format{Channels: 2, SampleRate: 44100, Encoding: bloop.EncodingFloat32},
		Levels:   export.Levels{Peak: 0.5, RMS: 0.25},
	}
	var b strings.Builder
	if err := newReportTemplate().Execute(&b, r); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	out := b.String()
	for _, want := range []string{"BEEP\n", "duration: 1.000 s", "peak:     0.500", "rms:      0.250", "wrote:    nothing", "music:    Note("} {
		if !strings.Contains(out, want) {
			t.Errorf("report does not contain %q:\n%s", want, out)
		}
	}
	r.Files = []string{"beep.wav", "beep.raw"}
	b.Reset()
	if err := newReportTemplate().Execute(&b, r); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(b.String(), "wrote:    beep.wav, beep.raw") {
		t.Errorf("files missing from report:\n%s", b.String())
	}
}
