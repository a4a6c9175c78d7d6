package cecdev

import (
	"bytes"
	"testing"
)

func TestDecodeFrame(t *testing.T) {
	tests := []struct {
		name     string
		frame    []byte
		ok       bool
		expected Command
	}{
		{
			name:     "User control pressed from TV",
			frame:    []byte{0x01, 0x44, 0x00},
			ok:       true,
			expected: Command{Initiator: AddressTV, Destination: AddressRecording1, Opcode: OpcodeUserControlPressed, OpcodeSet: true, Parameters: []byte{0x00}},
		},
		{
			name:     "Broadcast standby",
			frame:    []byte{0x0F, 0x36},
			ok:       true,
			expected: Command{Initiator: AddressTV, Destination: AddressBroadcast, Opcode: OpcodeStandby, OpcodeSet: true, Parameters: []byte{}},
		},
		{
			name:     "Polling frame",
			frame:    []byte{0x41},
			ok:       true,
			expected: Command{Initiator: AddressPlayback1, Destination: AddressRecording1},
		},
		{name: "Empty", frame: nil, ok: false},
		{name: "Too long", frame: make([]byte, 17), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeFrame(tt.frame)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if got.Initiator != tt.expected.Initiator || got.Destination != tt.expected.Destination ||
				got.Opcode != tt.expected.Opcode || got.OpcodeSet != tt.expected.OpcodeSet ||
				!bytes.Equal(got.Parameters, tt.expected.Parameters) {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestDecodeFrame_CopiesParameters(t *testing.T) {
	frame := []byte{0x01, 0x44, 0x01}
	cmd, _ := DecodeFrame(frame)
	frame[2] = 0x02
	if cmd.Parameters[0] != 0x01 {
		t.Error("expected parameters to be detached from the read buffer")
	}
}

func TestEncodeFrame(t *testing.T) {
	frame, err := EncodeFrame(Command{
		Initiator:   AddressRecording1,
		Destination: AddressBroadcast,
		Opcode:      OpcodeActiveSource,
		OpcodeSet:   true,
		Parameters:  []byte{0x10, 0x00},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []byte{0x1F, 0x82, 0x10, 0x00}; !bytes.Equal(frame, want) {
		t.Errorf("expected %X, got %X", want, frame)
	}

	if _, err := EncodeFrame(Command{OpcodeSet: true, Parameters: make([]byte, 15)}); err == nil {
		t.Error("expected an error for an oversized frame")
	}
}

func TestCommand_ParamsString(t *testing.T) {
	cmd := Command{Parameters: []byte{0x44, 0x0A}}
	if got, want := cmd.ParamsString(), "2 parameter(s): [0]=44 [1]=A"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
