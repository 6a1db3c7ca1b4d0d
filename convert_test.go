package gcc1101

import "testing"

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestFrequencyRoundTrip(t *testing.T) {
	// One encoding step of the 24-bit FREQ word.
	step := FXOSC >> 16
	for hz := uint64(300e6); hz <= 928e6; hz += 999983 {
		f0, f1, f2 := fromFrequency(hz)
		got := toFrequency(f0, f1, f2)
		if absDiff(got, hz) > step {
			t.Errorf("freq %d: decoded %d, off by more than %d", hz, got, step)
		}
	}
}

func TestFrequencyEncodeStable(t *testing.T) {
	for hz := uint64(300e6); hz <= 928e6; hz += 7777777 {
		f0, f1, f2 := fromFrequency(hz)
		g0, g1, g2 := fromFrequency(toFrequency(f0, f1, f2))
		if g0 != f0 || g1 != f1 || g2 != f2 {
			t.Errorf("freq %d: encode not stable across a decode", hz)
		}
	}
}

func TestFrequencyByteOrder(t *testing.T) {
	f0, f1, f2 := fromFrequency(868_300_000)
	word := uint64(f2)<<16 | uint64(f1)<<8 | uint64(f0)
	want := divRound(868_300_000<<16, FXOSC)
	if word != want {
		t.Errorf("FREQ word %#x, want %#x", word, want)
	}
}

func TestDrateRoundTrip(t *testing.T) {
	for baud := uint64(600); baud <= 500000; baud += 91 {
		m, e := fromDrate(baud)
		if e > 15 {
			t.Fatalf("baud %d: exponent %d out of range", baud, e)
		}
		got := toDrate(m, e)
		step := (FXOSC << e >> 28) + 1
		if absDiff(got, baud) > step {
			t.Errorf("baud %d: decoded %d (m=%d e=%d), step %d", baud, got, m, e, step)
		}
	}
}

func TestDrateEncodeStable(t *testing.T) {
	for baud := uint64(600); baud <= 500000; baud += 1013 {
		m, e := fromDrate(baud)
		m2, e2 := fromDrate(toDrate(m, e))
		if m2 != m || e2 != e {
			t.Errorf("baud %d: (%d,%d) re-encoded as (%d,%d)", baud, m, e, m2, e2)
		}
	}
}

func TestDrateBelowFloorClamps(t *testing.T) {
	m, e := fromDrate(1)
	if m != 0 || e != 0 {
		t.Errorf("got (m=%d e=%d), want the minimum encoding", m, e)
	}
}

func TestDeviationRoundTrip(t *testing.T) {
	for hz := uint64(1600); hz <= 380000; hz += 53 {
		m, e := fromDeviation(hz)
		if m > 7 || e > 7 {
			t.Fatalf("deviation %d: (m=%d e=%d) out of field widths", hz, m, e)
		}
		got := toDeviation(m, e)
		step := (FXOSC << e >> 17) + 1
		if absDiff(got, hz) > step {
			t.Errorf("deviation %d: decoded %d (m=%d e=%d), step %d", hz, got, m, e, step)
		}
	}
}

func TestDeviationEncodeStable(t *testing.T) {
	for hz := uint64(1600); hz <= 380000; hz += 997 {
		m, e := fromDeviation(hz)
		m2, e2 := fromDeviation(toDeviation(m, e))
		if m2 != m || e2 != e {
			t.Errorf("deviation %d: (%d,%d) re-encoded as (%d,%d)", hz, m, e, m2, e2)
		}
	}
}

func TestChanbwCovers(t *testing.T) {
	for hz := uint64(59000); hz <= 812000; hz += 509 {
		m, e := fromChanbw(hz)
		if m > 3 || e > 3 {
			t.Fatalf("bandwidth %d: (m=%d e=%d) out of field widths", hz, m, e)
		}
		got := toChanbw(m, e)
		if got < hz {
			t.Errorf("bandwidth %d: decoded %d does not cover the request", hz, got)
		}
		// The next narrower setting must not cover it, or this one is
		// not minimal. The narrower neighbour is (m+1) within the same
		// exponent, or (0, e+1) across the boundary.
		if m < 3 {
			if n := toChanbw(m+1, e); n >= hz {
				t.Errorf("bandwidth %d: picked %d but %d also covers", hz, got, n)
			}
		} else if e < 3 {
			if n := toChanbw(0, e+1); n >= hz {
				t.Errorf("bandwidth %d: picked %d but %d also covers", hz, got, n)
			}
		}
	}
}

func TestChanbwClamps(t *testing.T) {
	if m, e := fromChanbw(1000); m != 3 || e != 3 {
		t.Errorf("below range: got (m=%d e=%d), want narrowest", m, e)
	}
	if m, e := fromChanbw(2_000_000); m != 0 || e != 0 {
		t.Errorf("above range: got (m=%d e=%d), want widest", m, e)
	}
}
