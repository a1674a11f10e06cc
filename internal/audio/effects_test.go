package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

// drain pulls samples from a streamer until it reports done, returning
// the total sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return total
}

func TestBlipGeneratorLength(t *testing.T) {
	s := NewBlipGenerator(sampleRate)
	got := drain(t, s)
	want := sampleRate.N(120 * 1e6) // 120ms
	if got != want {
		t.Errorf("blip produced %d samples, want %d", got, want)
	}
}

func TestBoomGeneratorLength(t *testing.T) {
	s := NewBoomGenerator(sampleRate)
	got := drain(t, s)
	want := sampleRate.N(250 * 1e6)
	if got != want {
		t.Errorf("boom produced %d samples, want %d", got, want)
	}
}

func TestGeneratorsStayInRange(t *testing.T) {
	for name, s := range map[string]beep.Streamer{
		"blip": NewBlipGenerator(sampleRate),
		"boom": NewBoomGenerator(sampleRate),
	} {
		buf := make([][2]float64, 256)
		for {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("%s sample out of range: %v", name, buf[i][0])
				}
			}
			if !ok {
				break
			}
		}
	}
}

func TestUninitializedPlayerIsSilentNoOp(t *testing.T) {
	p := NewPlayer()
	// Must not panic or block without an initialized speaker.
	p.Fire()
	p.Hit()
	p.Cleanup()
}
