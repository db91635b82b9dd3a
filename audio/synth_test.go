package audio

import (
	"bytes"
	"testing"
	"time"
)

func TestNewBankRendersEveryEffect(t *testing.T) {
	bank := NewBank()
	for _, e := range []Effect{EffectChop, EffectMiss, EffectCoin, EffectJump, EffectBoss} {
		pcm := bank[e]
		if len(pcm) == 0 {
			t.Fatalf("%s rendered no samples", e)
		}
		if len(pcm)%4 != 0 {
			t.Fatalf("%s: %d bytes is not whole stereo frames", e, len(pcm))
		}
	}
}

func TestRenderLength(t *testing.T) {
	pcm := Render(Streamer(EffectJump))
	want := SampleRate.N(100*time.Millisecond) * 4
	if len(pcm) != want {
		t.Fatalf("jump = %d bytes, want %d", len(pcm), want)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	a := Render(Streamer(EffectChop))
	b := Render(Streamer(EffectChop))
	if !bytes.Equal(a, b) {
		t.Fatalf("chop rendering differs between runs")
	}
}

func TestUnknownEffect(t *testing.T) {
	if Streamer("whistle") != nil {
		t.Fatalf("expected nil streamer for unknown effect")
	}
	if Render(nil) != nil {
		t.Fatalf("expected no samples for nil streamer")
	}
}

func TestToInt16(t *testing.T) {
	cases := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{3, 32767},
		{-3, -32767},
	}
	for _, c := range cases {
		if got := toInt16(c.in); got != c.want {
			t.Fatalf("toInt16(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
