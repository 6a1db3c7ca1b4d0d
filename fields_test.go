package gcc1101

import "testing"

func TestMDMCFG4Fields(t *testing.T) {
	for e := byte(0); e <= 3; e++ {
		for m := byte(0); m <= 3; m++ {
			for d := byte(0); d <= 15; d++ {
				v := mdmcfg4(defMDMCFG4).withChanbwE(e).withChanbwM(m).withDrateE(d)
				if v.chanbwE() != e || v.chanbwM() != m || v.drateE() != d {
					t.Fatalf("built %#02x from (e=%d m=%d d=%d), read back (%d %d %d)",
						byte(v), e, m, d, v.chanbwE(), v.chanbwM(), v.drateE())
				}
			}
		}
	}
}

func TestFieldSetOrderInsensitive(t *testing.T) {
	a := mdmcfg4(defMDMCFG4).withChanbwM(2).withDrateE(9)
	b := mdmcfg4(defMDMCFG4).withDrateE(9).withChanbwM(2)
	if a != b {
		t.Errorf("order sensitive: %#02x vs %#02x", byte(a), byte(b))
	}
}

func TestFieldSetLastWins(t *testing.T) {
	v := mdmcfg4(defMDMCFG4).withDrateE(3).withDrateE(12)
	if v.drateE() != 12 {
		t.Errorf("drateE = %d, want 12", v.drateE())
	}
}

func TestFieldSetPreservesOtherBits(t *testing.T) {
	// DRATE_E occupies the low nibble; the rest of the default must survive.
	v := mdmcfg4(defMDMCFG4).withDrateE(0x0f)
	if byte(v)&0xf0 != defMDMCFG4&0xf0 {
		t.Errorf("bits outside DRATE_E changed: %#02x", byte(v))
	}
}

func TestMDMCFG2Fields(t *testing.T) {
	for _, mod := range []byte{ModFormat2FSK, ModFormatGFSK, ModFormatOOK, ModFormat4FSK, ModFormatMSK} {
		for _, sync := range []byte{SyncCheckDisabled, SyncCheck15of16, SyncCheck16of16, SyncCheck30of32} {
			v := mdmcfg2(defMDMCFG2).withDemDCFiltOff(1).withModFormat(mod).withSyncMode(sync)
			if v.modFormat() != mod || v.syncMode() != sync || v.demDCFiltOff() != 1 {
				t.Fatalf("built %#02x from (mod=%d sync=%d), read back (%d %d)",
					byte(v), mod, sync, v.modFormat(), v.syncMode())
			}
		}
	}
}

func TestDEVIATNFields(t *testing.T) {
	for e := byte(0); e <= 7; e++ {
		for m := byte(0); m <= 7; m++ {
			v := deviatn(defDEVIATN).withDeviationE(e).withDeviationM(m)
			if v.deviationE() != e || v.deviationM() != m {
				t.Fatalf("built %#02x from (e=%d m=%d), read back (%d %d)",
					byte(v), e, m, v.deviationE(), v.deviationM())
			}
		}
	}
}

func TestPKTCTRLFields(t *testing.T) {
	v0 := pktctrl0(defPKTCTRL0).withWhiteData(0).withLengthConfig(LengthConfigInfinite)
	if v0.whiteData() != 0 || v0.lengthConfig() != LengthConfigInfinite {
		t.Errorf("pktctrl0 %#02x: whiteData=%d lengthConfig=%d", byte(v0), v0.whiteData(), v0.lengthConfig())
	}
	// CRC_EN from the default must be untouched.
	if byte(v0)&0x04 != defPKTCTRL0&0x04 {
		t.Errorf("pktctrl0 CRC_EN changed: %#02x", byte(v0))
	}
	v1 := pktctrl1(defPKTCTRL1).withAdrChk(AddressCheckSelfAllBroadcast)
	if v1.adrChk() != AddressCheckSelfAllBroadcast {
		t.Errorf("pktctrl1 adrChk = %d", v1.adrChk())
	}
	if byte(v1)&0x04 != defPKTCTRL1&0x04 {
		t.Errorf("pktctrl1 APPEND_STATUS changed: %#02x", byte(v1))
	}
}

func TestStatusFields(t *testing.T) {
	if s := marcstate(0xe1).state(); s != 0x01 {
		t.Errorf("marcstate masked to %#02x, want 0x01", s)
	}
	rx := rxbytes(0x84)
	if !rx.overflow() || rx.num() != 4 {
		t.Errorf("rxbytes 0x84: overflow=%v num=%d", rx.overflow(), rx.num())
	}
	rx = rxbytes(0x04)
	if rx.overflow() || rx.num() != 4 {
		t.Errorf("rxbytes 0x04: overflow=%v num=%d", rx.overflow(), rx.num())
	}
}

func TestDefaultBuilders(t *testing.T) {
	// The register images written by SetDefaults.
	cases := []struct {
		name string
		got  byte
		want byte
	}{
		{"PKTCTRL0", byte(pktctrl0(defPKTCTRL0).withWhiteData(0)), 0x05},
		{"FSCTRL1", byte(fsctrl1(defFSCTRL1).withFreqIF(0x08)), 0x08},
		{"MDMCFG2", byte(mdmcfg2(defMDMCFG2).withDemDCFiltOff(1)), 0x82},
		{"MCSM0", byte(mcsm0(defMCSM0).withFSAutocal(AutoCalFromIdle)), 0x14},
		{"AGCCTRL2", byte(agcctrl2(defAGCCTRL2).withMaxLNAGain(0x04)), 0x23},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s default image %#02x, want %#02x", c.name, c.got, c.want)
		}
	}
}
