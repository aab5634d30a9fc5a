package registry

import (
	"fmt"

	"github.com/rubenCodeforges/ardudeck-sub012/internal/msp/payload"
)

// Well-known command ids. The v1 id space is shared by every firmware
// speaking MSP; ids above 0xFF only exist on the v2 wire format.
const (
	CmdAPIVersion   uint16 = 1
	CmdFCVariant    uint16 = 2
	CmdFCVersion    uint16 = 3
	CmdBoardInfo    uint16 = 4
	CmdBuildInfo    uint16 = 5
	CmdOSDCharWrite uint16 = 87
	CmdStatus       uint16 = 101
	CmdRawIMU       uint16 = 102
	CmdRC           uint16 = 105
	CmdAttitude     uint16 = 108
	CmdAltitude     uint16 = 109
	CmdAnalog       uint16 = 110
	CmdSetRawRC     uint16 = 200

	CmdRangefinder uint16 = 0x1F01
)

// Field widths of the fixed text fields in the identification messages.
const (
	variantIdentLen = 4
	boardIdentLen   = 4
	buildDateLen    = 11
	buildTimeLen    = 8
	gitRevisionLen  = 7
)

type APIVersion struct {
	Protocol uint8
	Major    uint8
	Minor    uint8
}

type FCVariant struct {
	Identifier string
}

type FCVersion struct {
	Major uint8
	Minor uint8
	Patch uint8
}

type BoardInfo struct {
	Identifier       string
	HardwareRevision uint16
}

type BuildInfo struct {
	Date        string
	Time        string
	GitRevision string
}

type Status struct {
	CycleTime uint16
	I2CErrors uint16
	Sensors   uint16
	Modes     uint32
	Profile   uint8
}

type RawIMU struct {
	Acc  [3]int16
	Gyro [3]int16
	Mag  [3]int16
}

// RCChannels carries one u16 per channel; the channel count is whatever the
// payload length allows.
type RCChannels struct {
	Channels []uint16
}

type Attitude struct {
	Roll  int16 // decidegrees
	Pitch int16 // decidegrees
	Yaw   int16 // degrees
}

type Altitude struct {
	EstimatedAlt int32 // cm
	Vario        int16 // cm/s
}

type Analog struct {
	VBat     uint8 // 0.1V steps
	MAhDrawn uint16
	RSSI     uint16
	Amperage int16 // 0.01A steps
}

// OSDCharWrite uploads one glyph cell to the OSD font memory.
type OSDCharWrite struct {
	Address uint8
	Data    []byte
}

type Rangefinder struct {
	Quality  uint8
	Distance int32 // mm, negative when out of range
}

// RegisterBuiltin loads the well-known message catalog into r.
func RegisterBuiltin(r *Registry) {
	r.Register(
		Descriptor{CmdAPIVersion, "MSP_API_VERSION", decodeAPIVersion, encodeAPIVersion},
		Descriptor{CmdFCVariant, "MSP_FC_VARIANT", decodeFCVariant, encodeFCVariant},
		Descriptor{CmdFCVersion, "MSP_FC_VERSION", decodeFCVersion, encodeFCVersion},
		Descriptor{CmdBoardInfo, "MSP_BOARD_INFO", decodeBoardInfo, encodeBoardInfo},
		Descriptor{CmdBuildInfo, "MSP_BUILD_INFO", decodeBuildInfo, encodeBuildInfo},
		Descriptor{CmdOSDCharWrite, "MSP_OSD_CHAR_WRITE", decodeOSDCharWrite, encodeOSDCharWrite},
		Descriptor{CmdStatus, "MSP_STATUS", decodeStatus, encodeStatus},
		Descriptor{CmdRawIMU, "MSP_RAW_IMU", decodeRawIMU, encodeRawIMU},
		Descriptor{CmdRC, "MSP_RC", decodeRC, encodeRC},
		Descriptor{CmdAttitude, "MSP_ATTITUDE", decodeAttitude, encodeAttitude},
		Descriptor{CmdAltitude, "MSP_ALTITUDE", decodeAltitude, encodeAltitude},
		Descriptor{CmdAnalog, "MSP_ANALOG", decodeAnalog, encodeAnalog},
		Descriptor{CmdSetRawRC, "MSP_SET_RAW_RC", decodeRC, encodeRC},
		Descriptor{CmdRangefinder, "MSP2_SENSOR_RANGEFINDER", decodeRangefinder, encodeRangefinder},
	)
}

func decodeAPIVersion(b []byte) (any, error) {
	r := payload.NewReader(b)
	rec := &APIVersion{Protocol: r.U8(), Major: r.U8(), Minor: r.U8()}
	return rec, r.Err()
}

func encodeAPIVersion(record any) ([]byte, error) {
	rec, ok := record.(*APIVersion)
	if !ok {
		return nil, fmt.Errorf("%w: want *APIVersion, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	w.WriteU8(rec.Protocol)
	w.WriteU8(rec.Major)
	w.WriteU8(rec.Minor)
	return w.Bytes(), nil
}

func decodeFCVariant(b []byte) (any, error) {
	r := payload.NewReader(b)
	rec := &FCVariant{Identifier: r.ReadText(variantIdentLen)}
	return rec, r.Err()
}

func encodeFCVariant(record any) ([]byte, error) {
	rec, ok := record.(*FCVariant)
	if !ok {
		return nil, fmt.Errorf("%w: want *FCVariant, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	w.WriteText(rec.Identifier, variantIdentLen)
	return w.Bytes(), nil
}

func decodeFCVersion(b []byte) (any, error) {
	r := payload.NewReader(b)
	rec := &FCVersion{Major: r.U8(), Minor: r.U8(), Patch: r.U8()}
	return rec, r.Err()
}

func encodeFCVersion(record any) ([]byte, error) {
	rec, ok := record.(*FCVersion)
	if !ok {
		return nil, fmt.Errorf("%w: want *FCVersion, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	w.WriteU8(rec.Major)
	w.WriteU8(rec.Minor)
	w.WriteU8(rec.Patch)
	return w.Bytes(), nil
}

func decodeBoardInfo(b []byte) (any, error) {
	r := payload.NewReader(b)
	rec := &BoardInfo{
		Identifier:       r.ReadText(boardIdentLen),
		HardwareRevision: r.U16(),
	}
	return rec, r.Err()
}

func encodeBoardInfo(record any) ([]byte, error) {
	rec, ok := record.(*BoardInfo)
	if !ok {
		return nil, fmt.Errorf("%w: want *BoardInfo, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	w.WriteText(rec.Identifier, boardIdentLen)
	w.WriteU16(rec.HardwareRevision)
	return w.Bytes(), nil
}

func decodeBuildInfo(b []byte) (any, error) {
	r := payload.NewReader(b)
	rec := &BuildInfo{
		Date:        r.ReadText(buildDateLen),
		Time:        r.ReadText(buildTimeLen),
		GitRevision: r.ReadText(gitRevisionLen),
	}
	return rec, r.Err()
}

func encodeBuildInfo(record any) ([]byte, error) {
	rec, ok := record.(*BuildInfo)
	if !ok {
		return nil, fmt.Errorf("%w: want *BuildInfo, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	w.WriteText(rec.Date, buildDateLen)
	w.WriteText(rec.Time, buildTimeLen)
	w.WriteText(rec.GitRevision, gitRevisionLen)
	return w.Bytes(), nil
}

func decodeStatus(b []byte) (any, error) {
	r := payload.NewReader(b)
	rec := &Status{
		CycleTime: r.U16(),
		I2CErrors: r.U16(),
		Sensors:   r.U16(),
		Modes:     r.U32(),
		Profile:   r.U8(),
	}
	return rec, r.Err()
}

func encodeStatus(record any) ([]byte, error) {
	rec, ok := record.(*Status)
	if !ok {
		return nil, fmt.Errorf("%w: want *Status, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	w.WriteU16(rec.CycleTime)
	w.WriteU16(rec.I2CErrors)
	w.WriteU16(rec.Sensors)
	w.WriteU32(rec.Modes)
	w.WriteU8(rec.Profile)
	return w.Bytes(), nil
}

func decodeRawIMU(b []byte) (any, error) {
	r := payload.NewReader(b)
	rec := &RawIMU{}
	for i := 0; i < 3; i++ {
		rec.Acc[i] = r.I16()
	}
	for i := 0; i < 3; i++ {
		rec.Gyro[i] = r.I16()
	}
	for i := 0; i < 3; i++ {
		rec.Mag[i] = r.I16()
	}
	return rec, r.Err()
}

func encodeRawIMU(record any) ([]byte, error) {
	rec, ok := record.(*RawIMU)
	if !ok {
		return nil, fmt.Errorf("%w: want *RawIMU, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	for _, v := range rec.Acc {
		w.WriteI16(v)
	}
	for _, v := range rec.Gyro {
		w.WriteI16(v)
	}
	for _, v := range rec.Mag {
		w.WriteI16(v)
	}
	return w.Bytes(), nil
}

func decodeRC(b []byte) (any, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("%w: rc payload %d bytes", ErrInvalidLength, len(b))
	}
	r := payload.NewReader(b)
	rec := &RCChannels{Channels: make([]uint16, 0, len(b)/2)}
	for r.Remaining() >= 2 {
		rec.Channels = append(rec.Channels, r.U16())
	}
	return rec, r.Err()
}

func encodeRC(record any) ([]byte, error) {
	rec, ok := record.(*RCChannels)
	if !ok {
		return nil, fmt.Errorf("%w: want *RCChannels, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	for _, ch := range rec.Channels {
		w.WriteU16(ch)
	}
	return w.Bytes(), nil
}

func decodeAttitude(b []byte) (any, error) {
	r := payload.NewReader(b)
	rec := &Attitude{Roll: r.I16(), Pitch: r.I16(), Yaw: r.I16()}
	return rec, r.Err()
}

func encodeAttitude(record any) ([]byte, error) {
	rec, ok := record.(*Attitude)
	if !ok {
		return nil, fmt.Errorf("%w: want *Attitude, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	w.WriteI16(rec.Roll)
	w.WriteI16(rec.Pitch)
	w.WriteI16(rec.Yaw)
	return w.Bytes(), nil
}

func decodeAltitude(b []byte) (any, error) {
	r := payload.NewReader(b)
	rec := &Altitude{EstimatedAlt: r.I32(), Vario: r.I16()}
	return rec, r.Err()
}

func encodeAltitude(record any) ([]byte, error) {
	rec, ok := record.(*Altitude)
	if !ok {
		return nil, fmt.Errorf("%w: want *Altitude, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	w.WriteI32(rec.EstimatedAlt)
	w.WriteI16(rec.Vario)
	return w.Bytes(), nil
}

func decodeAnalog(b []byte) (any, error) {
	r := payload.NewReader(b)
	rec := &Analog{
		VBat:     r.U8(),
		MAhDrawn: r.U16(),
		RSSI:     r.U16(),
		Amperage: r.I16(),
	}
	return rec, r.Err()
}

func encodeAnalog(record any) ([]byte, error) {
	rec, ok := record.(*Analog)
	if !ok {
		return nil, fmt.Errorf("%w: want *Analog, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	w.WriteU8(rec.VBat)
	w.WriteU16(rec.MAhDrawn)
	w.WriteU16(rec.RSSI)
	w.WriteI16(rec.Amperage)
	return w.Bytes(), nil
}

func decodeOSDCharWrite(b []byte) (any, error) {
	r := payload.NewReader(b)
	rec := &OSDCharWrite{Address: r.U8(), Data: r.Rest()}
	return rec, r.Err()
}

func encodeOSDCharWrite(record any) ([]byte, error) {
	rec, ok := record.(*OSDCharWrite)
	if !ok {
		return nil, fmt.Errorf("%w: want *OSDCharWrite, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	w.WriteU8(rec.Address)
	w.WriteBytes(rec.Data)
	return w.Bytes(), nil
}

func decodeRangefinder(b []byte) (any, error) {
	r := payload.NewReader(b)
	rec := &Rangefinder{Quality: r.U8(), Distance: r.I32()}
	return rec, r.Err()
}

func encodeRangefinder(record any) ([]byte, error) {
	rec, ok := record.(*Rangefinder)
	if !ok {
		return nil, fmt.Errorf("%w: want *Rangefinder, got %T", ErrRecordType, record)
	}
	var w payload.Writer
	w.WriteU8(rec.Quality)
	w.WriteI32(rec.Distance)
	return w.Bytes(), nil
}
