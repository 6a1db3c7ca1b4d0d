// Package gcc1101 drives a TI CC1101 sub-GHz transceiver over SPI.
//
// The driver owns its SPI connection and the GDO0 status pin for its whole
// lifetime and is fully synchronous: state transitions and packet I/O
// busy-poll the chip with no timeout. Callers needing a deadline run the
// blocking call on a goroutine they abandon. Methods are not safe for
// concurrent use.
package gcc1101

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/driver/driverreg"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var log = logrus.New()

func init() {
	log.Formatter = new(logrus.TextFormatter)
	log.Level = logrus.WarnLevel
}

// SetLogLevel raises or lowers the driver's log verbosity. Debug level
// traces strobes, mode changes and packet I/O.
func SetLogLevel(level logrus.Level) {
	log.Level = level
}

var (
	// ErrRxOverflow is returned when the RX FIFO overflowed before a
	// stable byte count was observed. The FIFO has been flushed; receive
	// may be retried immediately.
	ErrRxOverflow = errors.New("rx fifo overflow")
	// ErrCrcMismatch is returned for a received packet whose CRC check
	// failed. The FIFO has been flushed; receive may be retried.
	ErrCrcMismatch = errors.New("crc mismatch")
	// ErrPayloadLength is returned for transmit payloads of length 0 or
	// above MaxPayloadLength. No strobe has been issued.
	ErrPayloadLength = errors.New("payload length out of range")
)

// RadioMode is the operating mode requested from the chip.
type RadioMode int

const (
	ModeIdle RadioMode = iota
	ModeReceive
	ModeTransmit
)

// SyncMode selects how much of the sync word the demodulator must match.
type SyncMode int

const (
	// SyncDisabled turns sync word detection off.
	SyncDisabled SyncMode = iota
	// SyncPartial matches 15 of 16 bits of the sync word.
	SyncPartial
	// SyncPartialRepeated matches 30 of 32 bits of the repeated word.
	SyncPartialRepeated
	// SyncFull matches all 16 bits.
	SyncFull
)

// Modulation selects the signal modulation format.
type Modulation int

const (
	Modulation2FSK Modulation = iota
	ModulationGFSK
	ModulationOOK
	Modulation4FSK
	ModulationMSK
)

// AddressFilter selects hardware address filtering of received packets.
type AddressFilter int

const (
	// FilterDisabled accepts every packet.
	FilterDisabled AddressFilter = iota
	// FilterDevice accepts only the device address.
	FilterDevice
	// FilterDeviceLowBroadcast also accepts broadcast address 0x00.
	FilterDeviceLowBroadcast
	// FilterDeviceHighLowBroadcast also accepts 0x00 and 0xFF.
	FilterDeviceHighLowBroadcast
)

// LengthMode selects the packet length mode.
type LengthMode int

const (
	// LengthFixed transmits and expects packets of exactly the set length.
	LengthFixed LengthMode = iota
	// LengthVariable reads the length from the first byte, capped at the
	// set maximum.
	LengthVariable
	// LengthInfinite streams without hardware packet framing.
	LengthInfinite
)

// Radio is a CC1101 behind an SPI port. The connection and pin are owned
// exclusively by the driver; no concurrent access is guarded.
type Radio struct {
	SPI  spi.Conn
	GDO0 gpio.PinIO
}

// NewRadio opens the named SPI port and GDO0 pin and returns a driver over
// them. The chip is left untouched; call SetDefaults to load the baseline
// configuration.
func NewRadio(spiDev, gdo0 string) (*Radio, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	if _, err := driverreg.Init(); err != nil {
		return nil, err
	}

	p, err := spireg.Open(spiDev)
	if err != nil {
		return nil, fmt.Errorf("spi open %s: %w", spiDev, err)
	}
	c, err := p.Connect(5*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("spi connect %s: %w", spiDev, err)
	}

	pin := gpioreg.ByName(gdo0)
	if pin == nil {
		return nil, errors.New("failed to find GDO0 pin " + gdo0)
	}
	if err := pin.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("gpio gdo0 %s: %w", gdo0, err)
	}

	return &Radio{SPI: c, GDO0: pin}, nil
}

// SetFrequency sets the carrier frequency in Hz.
func (r *Radio) SetFrequency(hz uint64) error {
	freq0, freq1, freq2 := fromFrequency(hz)
	if err := r.writeRegister(RegFREQ0, freq0); err != nil {
		return err
	}
	if err := r.writeRegister(RegFREQ1, freq1); err != nil {
		return err
	}
	return r.writeRegister(RegFREQ2, freq2)
}

// GetFrequency returns the configured carrier frequency in Hz.
func (r *Radio) GetFrequency() (uint64, error) {
	freq0, err := r.readRegister(RegFREQ0)
	if err != nil {
		return 0, err
	}
	freq1, err := r.readRegister(RegFREQ1)
	if err != nil {
		return 0, err
	}
	freq2, err := r.readRegister(RegFREQ2)
	if err != nil {
		return 0, err
	}
	return toFrequency(freq0, freq1, freq2), nil
}

// SetDeviation sets the FSK frequency deviation in Hz.
func (r *Radio) SetDeviation(hz uint64) error {
	m, e := fromDeviation(hz)
	v := deviatn(defDEVIATN).withDeviationM(m).withDeviationE(e)
	return r.writeRegister(RegDEVIATN, byte(v))
}

// SetDataRate sets the over-the-air data rate in baud.
func (r *Radio) SetDataRate(baud uint64) error {
	m, e := fromDrate(baud)
	err := r.modifyRegister(RegMDMCFG4, func(v byte) byte {
		return byte(mdmcfg4(v).withDrateE(e))
	})
	if err != nil {
		return err
	}
	return r.writeRegister(RegMDMCFG3, byte(mdmcfg3(defMDMCFG3).withDrateM(m)))
}

// SetChanBW sets the channel filter bandwidth in Hz.
func (r *Radio) SetChanBW(hz uint64) error {
	m, e := fromChanbw(hz)
	return r.modifyRegister(RegMDMCFG4, func(v byte) byte {
		return byte(mdmcfg4(v).withChanbwM(m).withChanbwE(e))
	})
}

// SetSyncMode configures the sync word and at what level it is verified.
// The word is ignored for SyncDisabled, which restores the reset word.
func (r *Radio) SetSyncMode(mode SyncMode, word uint16) error {
	check := SyncCheckDisabled
	switch mode {
	case SyncDisabled:
		word = uint16(defSYNC1)<<8 | uint16(defSYNC0)
	case SyncPartial:
		check = SyncCheck15of16
	case SyncPartialRepeated:
		check = SyncCheck30of32
	case SyncFull:
		check = SyncCheck16of16
	}
	err := r.modifyRegister(RegMDMCFG2, func(v byte) byte {
		return byte(mdmcfg2(v).withSyncMode(check))
	})
	if err != nil {
		return err
	}
	if err := r.writeRegister(RegSYNC1, byte(word>>8)); err != nil {
		return err
	}
	return r.writeRegister(RegSYNC0, byte(word))
}

// SetModulation configures the signal modulation format.
func (r *Radio) SetModulation(m Modulation) error {
	format := ModFormat2FSK
	switch m {
	case ModulationGFSK:
		format = ModFormatGFSK
	case ModulationOOK:
		format = ModFormatOOK
	case Modulation4FSK:
		format = ModFormat4FSK
	case ModulationMSK:
		format = ModFormatMSK
	}
	return r.modifyRegister(RegMDMCFG2, func(v byte) byte {
		return byte(mdmcfg2(v).withModFormat(format))
	})
}

// SetAddressFilter configures the device address and hardware filtering of
// received packets against it.
func (r *Radio) SetAddressFilter(filter AddressFilter, addr byte) error {
	check := AddressCheckDisabled
	switch filter {
	case FilterDisabled:
		addr = defADDR
	case FilterDevice:
		check = AddressCheckSelf
	case FilterDeviceLowBroadcast:
		check = AddressCheckSelfLowBroadcast
	case FilterDeviceHighLowBroadcast:
		check = AddressCheckSelfAllBroadcast
	}
	err := r.modifyRegister(RegPKTCTRL1, func(v byte) byte {
		return byte(pktctrl1(v).withAdrChk(check))
	})
	if err != nil {
		return err
	}
	return r.writeRegister(RegADDR, addr)
}

// SetPacketLength configures the packet length mode. The length is the
// fixed packet size for LengthFixed, the upper bound for LengthVariable and
// ignored for LengthInfinite.
func (r *Radio) SetPacketLength(mode LengthMode, length byte) error {
	config := LengthConfigFixed
	switch mode {
	case LengthVariable:
		config = LengthConfigVariable
	case LengthInfinite:
		config = LengthConfigInfinite
		length = defPKTLEN
	}
	err := r.modifyRegister(RegPKTCTRL0, func(v byte) byte {
		return byte(pktctrl0(v).withLengthConfig(config))
	})
	if err != nil {
		return err
	}
	return r.writeRegister(RegPKTLEN, length)
}

// HardwareInfo reads the chip part number and version.
func (r *Radio) HardwareInfo() (partnum, version byte, err error) {
	partnum, err = r.readStatus(StatusPARTNUM)
	if err != nil {
		return 0, 0, err
	}
	version, err = r.readStatus(StatusVERSION)
	if err != nil {
		return 0, 0, err
	}
	return partnum, version, nil
}

// RSSIDbm reads the received signal strength estimate for the current
// channel, in dBm.
func (r *Radio) RSSIDbm() (int16, error) {
	raw, err := r.readStatus(StatusRSSI)
	if err != nil {
		return 0, err
	}
	return rssiToDbm(raw), nil
}

// LQI reads the 7-bit link quality score of the last received packet.
func (r *Radio) LQI() (byte, error) {
	raw, err := r.readStatus(StatusLQI)
	if err != nil {
		return 0, err
	}
	return lqiQuality(raw), nil
}

// SetDefaults resets the chip and loads the driver's baseline register
// configuration.
func (r *Radio) SetDefaults() error {
	if err := r.writeStrobe(StrobeSRES); err != nil {
		return err
	}
	if err := r.writeRegister(RegPKTCTRL0, byte(pktctrl0(defPKTCTRL0).withWhiteData(0))); err != nil {
		return err
	}
	// f_if = (f_osc / 2^10) * FREQ_IF
	if err := r.writeRegister(RegFSCTRL1, byte(fsctrl1(defFSCTRL1).withFreqIF(0x08))); err != nil {
		return err
	}
	if err := r.writeRegister(RegMDMCFG2, byte(mdmcfg2(defMDMCFG2).withDemDCFiltOff(1))); err != nil {
		return err
	}
	if err := r.writeRegister(RegMCSM0, byte(mcsm0(defMCSM0).withFSAutocal(AutoCalFromIdle))); err != nil {
		return err
	}
	return r.writeRegister(RegAGCCTRL2, byte(agcctrl2(defAGCCTRL2).withMaxLNAGain(0x04)))
}

// SetRadioMode steers the chip into the requested mode. Entering RX or TX
// passes through IDLE first so no stale state survives. The call blocks,
// polling MARCSTATE without bound, until the chip confirms the transition.
func (r *Radio) SetRadioMode(mode RadioMode) error {
	var target byte
	switch mode {
	case ModeReceive:
		if err := r.SetRadioMode(ModeIdle); err != nil {
			return err
		}
		if err := r.writeStrobe(StrobeSRX); err != nil {
			return err
		}
		target = MarcStateRX
	case ModeTransmit:
		if err := r.SetRadioMode(ModeIdle); err != nil {
			return err
		}
		if err := r.writeStrobe(StrobeSTX); err != nil {
			return err
		}
		target = MarcStateTX
	case ModeIdle:
		if err := r.writeStrobe(StrobeSIDLE); err != nil {
			return err
		}
		target = MarcStateIdle
	}
	log.WithField("target", target).Debug("awaiting machine state")
	return r.waitForState(target)
}

// waitForState busy-polls MARCSTATE until it reports the target state.
// Unbounded: an unresponsive chip keeps the loop spinning.
func (r *Radio) waitForState(target byte) error {
	for {
		v, err := r.readStatus(StatusMARCSTATE)
		if err != nil {
			return err
		}
		if marcstate(v).state() == target {
			return nil
		}
	}
}

// rxBytesAvailable polls RXBYTES until the byte count is non-zero and
// stable across two consecutive polls, guarding against reading a packet
// the chip is still writing. An overflow flag aborts with ErrRxOverflow.
func (r *Radio) rxBytesAvailable() (byte, error) {
	var last byte
	for {
		v, err := r.readStatus(StatusRXBYTES)
		if err != nil {
			return 0, err
		}
		if rxbytes(v).overflow() {
			return 0, ErrRxOverflow
		}
		n := rxbytes(v).num()
		if n > 0 && n == last {
			return n, nil
		}
		last = n
	}
}

// Receive blocks until one packet is in the RX FIFO, drains it into buf and
// returns the length byte and source address read ahead of the payload.
// The RX FIFO is flushed before returning on every path, so the chip is
// ready for the next packet even after ErrRxOverflow or ErrCrcMismatch.
func (r *Radio) Receive(buf []byte) (length, addr byte, err error) {
	if _, err = r.rxBytesAvailable(); err != nil {
		if flushErr := r.writeStrobe(StrobeSFRX); flushErr != nil {
			return 0, 0, flushErr
		}
		return 0, 0, err
	}

	length, addr, err = r.readFifo(buf)
	if err != nil {
		return 0, 0, err
	}
	lqi, err := r.readStatus(StatusLQI)
	if err != nil {
		return 0, 0, err
	}
	if err = r.waitForState(MarcStateIdle); err != nil {
		return 0, 0, err
	}
	if err = r.writeStrobe(StrobeSFRX); err != nil {
		return 0, 0, err
	}
	if !lqiCrcOK(lqi) {
		return 0, 0, ErrCrcMismatch
	}
	log.WithFields(logrus.Fields{"len": length, "addr": addr}).Debug("packet received")
	return length, addr, nil
}

// Transmit sends one length-prefixed payload. Payload lengths outside
// (0, MaxPayloadLength] are rejected with ErrPayloadLength before any
// strobe is issued.
//
// The radio dwells in RX while the FIFO is loaded, a structural
// listen-before-talk: no energy detection actually gates the transmit.
// Completion is detected by polling GDO0, programmed to assert when the
// sync word has been sent and deassert at end of packet. Blocking,
// unbounded.
func (r *Radio) Transmit(payload []byte) error {
	if len(payload) == 0 || len(payload) > MaxPayloadLength {
		return ErrPayloadLength
	}

	if err := r.writeRegister(RegIOCFG0, 0x09); err != nil {
		return err
	}
	if err := r.SetRadioMode(ModeIdle); err != nil {
		return err
	}
	if err := r.writeStrobe(StrobeSFTX); err != nil {
		return err
	}
	if err := r.SetRadioMode(ModeReceive); err != nil {
		return err
	}

	frame := make([]byte, len(payload)+1)
	frame[0] = byte(len(payload))
	copy(frame[1:], payload)
	if err := r.writeBurst(RegFIFO, frame); err != nil {
		return err
	}

	// GDO0: assert on sync word sent, deassert at end of packet.
	if err := r.writeRegister(RegIOCFG0, 0x06); err != nil {
		return err
	}
	if err := r.SetRadioMode(ModeTransmit); err != nil {
		return err
	}

	for r.GDO0.Read() == gpio.Low {
	}
	for r.GDO0.Read() == gpio.High {
	}

	log.WithField("len", len(payload)).Debug("packet transmitted")
	return r.SetRadioMode(ModeIdle)
}
