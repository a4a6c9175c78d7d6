package cecdev

import (
	"fmt"
	"strings"
)

// LogicalAddress identifies a device on the CEC bus
type LogicalAddress uint8

const (
	AddressTV           LogicalAddress = 0x0
	AddressRecording1   LogicalAddress = 0x1
	AddressPlayback1    LogicalAddress = 0x4
	AddressAudioSystem  LogicalAddress = 0x5
	AddressUnregistered LogicalAddress = 0xF
	AddressBroadcast    LogicalAddress = 0xF
)

// Opcode is the first byte following the header of a CEC frame
type Opcode uint8

const (
	OpcodeActiveSource           Opcode = 0x82
	OpcodeStandby                Opcode = 0x36
	OpcodePlay                   Opcode = 0x41
	OpcodeDeckControl            Opcode = 0x42
	OpcodeUserControlPressed     Opcode = 0x44
	OpcodeUserControlRelease     Opcode = 0x45
	OpcodeGiveOSDName            Opcode = 0x46
	OpcodeGivePhysicalAddress    Opcode = 0x83
	OpcodeVendorRemoteButtonDown Opcode = 0x8A
	OpcodeVendorRemoteButtonUp   Opcode = 0x8B
)

// UserControlCode is the button code carried by user control and vendor button frames
type UserControlCode uint8

const (
	UserControlSelect             UserControlCode = 0x00
	UserControlUp                 UserControlCode = 0x01
	UserControlDown               UserControlCode = 0x02
	UserControlLeft               UserControlCode = 0x03
	UserControlRight              UserControlCode = 0x04
	UserControlRootMenu           UserControlCode = 0x09
	UserControlSetupMenu          UserControlCode = 0x0A
	UserControlExit               UserControlCode = 0x0D
	UserControlNumber0            UserControlCode = 0x20
	UserControlNumber1            UserControlCode = 0x21
	UserControlNumber2            UserControlCode = 0x22
	UserControlNumber3            UserControlCode = 0x23
	UserControlNumber4            UserControlCode = 0x24
	UserControlNumber5            UserControlCode = 0x25
	UserControlNumber6            UserControlCode = 0x26
	UserControlNumber7            UserControlCode = 0x27
	UserControlNumber8            UserControlCode = 0x28
	UserControlNumber9            UserControlCode = 0x29
	UserControlDisplayInformation UserControlCode = 0x35
	UserControlPlay               UserControlCode = 0x44
	UserControlStop               UserControlCode = 0x45
	UserControlPause              UserControlCode = 0x46
	UserControlRewind             UserControlCode = 0x48
	UserControlFastForward        UserControlCode = 0x49
	UserControlForward            UserControlCode = 0x4B
	UserControlBackward           UserControlCode = 0x4C
	UserControlSubPicture         UserControlCode = 0x51
	UserControlProgramGuide       UserControlCode = 0x53
	UserControlF1Blue             UserControlCode = 0x71
	UserControlF2Red              UserControlCode = 0x72
	UserControlF3Green            UserControlCode = 0x73
	UserControlF4Yellow           UserControlCode = 0x74

	// UserControlReturn is the Samsung Anynet+ return button
	UserControlReturn UserControlCode = 0x91
)

// DeckControlMode is the parameter of a deck control frame
type DeckControlMode uint8

const (
	DeckSkipForward DeckControlMode = 0x01
	DeckSkipReverse DeckControlMode = 0x02
	DeckStop        DeckControlMode = 0x03
	DeckEject       DeckControlMode = 0x04
)

// Command is one decoded CEC frame
type Command struct {
	Initiator   LogicalAddress
	Destination LogicalAddress
	Opcode      Opcode

	// OpcodeSet is false for polling frames, which carry only a header
	OpcodeSet  bool
	Parameters []byte
}

// ParamsString formats the parameters for diagnostics, e.g. "2 parameter(s): [0]=44 [1]=1"
func (c Command) ParamsString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d parameter(s):", len(c.Parameters))
	for i, p := range c.Parameters {
		fmt.Fprintf(&sb, " [%d]=%X", i, p)
	}
	return sb.String()
}

// DecodeFrame parses a raw frame as read from the bus
func DecodeFrame(frame []byte) (Command, bool) {
	if len(frame) == 0 || len(frame) > maxFrameSize {
		return Command{}, false
	}

	cmd := Command{
		Initiator:   LogicalAddress(frame[0] >> 4),
		Destination: LogicalAddress(frame[0] & 0x0F),
	}
	if len(frame) > 1 {
		cmd.Opcode = Opcode(frame[1])
		cmd.OpcodeSet = true
		cmd.Parameters = append([]byte(nil), frame[2:]...)
	}
	return cmd, true
}

// EncodeFrame builds the raw frame for a command
func EncodeFrame(cmd Command) ([]byte, error) {
	if 2+len(cmd.Parameters) > maxFrameSize {
		return nil, fmt.Errorf("frame too long: %d parameters", len(cmd.Parameters))
	}

	frame := []byte{byte(cmd.Initiator)<<4 | byte(cmd.Destination)&0x0F}
	if !cmd.OpcodeSet {
		return frame, nil
	}
	frame = append(frame, byte(cmd.Opcode))
	return append(frame, cmd.Parameters...), nil
}

const maxFrameSize = 16

// LogLevel is the severity of a message emitted by the device layer
type LogLevel int

const (
	LogError   LogLevel = 1
	LogWarning LogLevel = 2
	LogNotice  LogLevel = 4
	LogTraffic LogLevel = 8
	LogDebug   LogLevel = 16
)

// LogMessage is a diagnostic message emitted by the device layer
type LogMessage struct {
	Level   LogLevel
	Message string
}

// Alert reports a condition on the adapter that needs the owner's attention
type Alert int

const (
	AlertServiceDevice Alert = iota
	AlertConnectionLost
	AlertPermissionError
	AlertPortBusy
	AlertPhysicalAddressError
	AlertTVPollFailed
)

func (a Alert) String() string {
	switch a {
	case AlertServiceDevice:
		return "service device"
	case AlertConnectionLost:
		return "connection lost"
	case AlertPermissionError:
		return "permission error"
	case AlertPortBusy:
		return "port busy"
	case AlertPhysicalAddressError:
		return "physical address error"
	case AlertTVPollFailed:
		return "TV poll failed"
	default:
		return fmt.Sprintf("alert(%d)", int(a))
	}
}

// DeviceType is the kind of device the adapter registers as
type DeviceType int

const (
	DeviceTypeRecording DeviceType = iota
	DeviceTypePlayback
)

// AdapterDescriptor describes an adapter found by DetectAdapters
type AdapterDescriptor struct {
	// Port is the value to pass to Open
	Port            string
	Driver          string
	Name            string
	PhysicalAddress uint16
}
