package gcc1101

// Typed register bytes with one getter and one setter per named field.
// Setters clear only their own bit range before OR-ing the new value in, so
// chained sets on distinct fields commute and bits outside the touched
// field survive a read-modify-write untouched.

func getField(raw, mask, shift byte) byte {
	return (raw & mask) >> shift
}

func setField(raw, mask, shift, v byte) byte {
	return (raw &^ mask) | ((v << shift) & mask)
}

// MDMCFG4: CHANBW_E[7:6] CHANBW_M[5:4] DRATE_E[3:0]

type mdmcfg4 byte

func (v mdmcfg4) chanbwE() byte              { return getField(byte(v), 0xc0, 6) }
func (v mdmcfg4) chanbwM() byte              { return getField(byte(v), 0x30, 4) }
func (v mdmcfg4) drateE() byte               { return getField(byte(v), 0x0f, 0) }
func (v mdmcfg4) withChanbwE(e byte) mdmcfg4 { return mdmcfg4(setField(byte(v), 0xc0, 6, e)) }
func (v mdmcfg4) withChanbwM(m byte) mdmcfg4 { return mdmcfg4(setField(byte(v), 0x30, 4, m)) }
func (v mdmcfg4) withDrateE(e byte) mdmcfg4  { return mdmcfg4(setField(byte(v), 0x0f, 0, e)) }

// MDMCFG3 is DRATE_M across the full byte.

type mdmcfg3 byte

func (v mdmcfg3) drateM() byte              { return byte(v) }
func (v mdmcfg3) withDrateM(m byte) mdmcfg3 { return mdmcfg3(m) }

// MDMCFG2: DEM_DCFILT_OFF[7] MOD_FORMAT[6:4] MANCHESTER_EN[3] SYNC_MODE[2:0]

type mdmcfg2 byte

func (v mdmcfg2) demDCFiltOff() byte              { return getField(byte(v), 0x80, 7) }
func (v mdmcfg2) modFormat() byte                 { return getField(byte(v), 0x70, 4) }
func (v mdmcfg2) syncMode() byte                  { return getField(byte(v), 0x07, 0) }
func (v mdmcfg2) withDemDCFiltOff(b byte) mdmcfg2 { return mdmcfg2(setField(byte(v), 0x80, 7, b)) }
func (v mdmcfg2) withModFormat(m byte) mdmcfg2    { return mdmcfg2(setField(byte(v), 0x70, 4, m)) }
func (v mdmcfg2) withSyncMode(m byte) mdmcfg2     { return mdmcfg2(setField(byte(v), 0x07, 0, m)) }

// DEVIATN: DEVIATION_E[6:4] DEVIATION_M[2:0]

type deviatn byte

func (v deviatn) deviationE() byte              { return getField(byte(v), 0x70, 4) }
func (v deviatn) deviationM() byte              { return getField(byte(v), 0x07, 0) }
func (v deviatn) withDeviationE(e byte) deviatn { return deviatn(setField(byte(v), 0x70, 4, e)) }
func (v deviatn) withDeviationM(m byte) deviatn { return deviatn(setField(byte(v), 0x07, 0, m)) }

// PKTCTRL1: PQT[7:5] CRC_AUTOFLUSH[3] APPEND_STATUS[2] ADR_CHK[1:0]

type pktctrl1 byte

func (v pktctrl1) adrChk() byte               { return getField(byte(v), 0x03, 0) }
func (v pktctrl1) withAdrChk(m byte) pktctrl1 { return pktctrl1(setField(byte(v), 0x03, 0, m)) }

// PKTCTRL0: WHITE_DATA[6] PKT_FORMAT[5:4] CRC_EN[2] LENGTH_CONFIG[1:0]

type pktctrl0 byte

func (v pktctrl0) whiteData() byte                  { return getField(byte(v), 0x40, 6) }
func (v pktctrl0) lengthConfig() byte               { return getField(byte(v), 0x03, 0) }
func (v pktctrl0) withWhiteData(b byte) pktctrl0    { return pktctrl0(setField(byte(v), 0x40, 6, b)) }
func (v pktctrl0) withLengthConfig(c byte) pktctrl0 { return pktctrl0(setField(byte(v), 0x03, 0, c)) }

// FSCTRL1: FREQ_IF[4:0]

type fsctrl1 byte

func (v fsctrl1) freqIF() byte              { return getField(byte(v), 0x1f, 0) }
func (v fsctrl1) withFreqIF(f byte) fsctrl1 { return fsctrl1(setField(byte(v), 0x1f, 0, f)) }

// MCSM0: FS_AUTOCAL[5:4] PO_TIMEOUT[3:2] PIN_CTRL_EN[1] XOSC_FORCE_ON[0]

type mcsm0 byte

func (v mcsm0) fsAutocal() byte            { return getField(byte(v), 0x30, 4) }
func (v mcsm0) withFSAutocal(a byte) mcsm0 { return mcsm0(setField(byte(v), 0x30, 4, a)) }

// AGCCTRL2: MAX_DVGA_GAIN[7:6] MAX_LNA_GAIN[5:3] MAGN_TARGET[2:0]

type agcctrl2 byte

func (v agcctrl2) maxLNAGain() byte               { return getField(byte(v), 0x38, 3) }
func (v agcctrl2) withMaxLNAGain(g byte) agcctrl2 { return agcctrl2(setField(byte(v), 0x38, 3, g)) }

// MARCSTATE: MARC_STATE[4:0]

type marcstate byte

func (v marcstate) state() byte { return getField(byte(v), 0x1f, 0) }

// RXBYTES: RXFIFO_OVERFLOW[7] NUM_RXBYTES[6:0]

type rxbytes byte

func (v rxbytes) overflow() bool { return byte(v)&0x80 != 0 }
func (v rxbytes) num() byte      { return byte(v) & 0x7f }
