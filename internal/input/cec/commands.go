package cec

import (
	"github.com/genricoloni/vidmode/internal/cecdev"
	"github.com/genricoloni/vidmode/internal/domain"
	"github.com/genricoloni/vidmode/internal/input"
	"go.uber.org/zap"
)

func (w *Worker) handleCommand(cmd cecdev.Command) {
	switch cmd.Opcode {
	case cecdev.OpcodePlay:
		w.send(input.KeyPlay, domain.KeyPressed)

	case cecdev.OpcodeDeckControl:
		if len(cmd.Parameters) == 0 {
			return
		}
		if key := deckControlKey(cecdev.DeckControlMode(cmd.Parameters[0])); key != "" {
			w.send(key, domain.KeyPressed)
		}

	case cecdev.OpcodeUserControlPressed, cecdev.OpcodeVendorRemoteButtonDown,
		cecdev.OpcodeUserControlRelease, cecdev.OpcodeVendorRemoteButtonUp:
		w.handleButton(cmd)

	case cecdev.OpcodeGiveOSDName, cecdev.OpcodeGivePhysicalAddress:
		// answered by the device layer

	case cecdev.OpcodeStandby:
		w.handleStandby()

	default:
		w.logger.Debug("Unhandled CEC command", zap.Uint8("opcode", uint8(cmd.Opcode)))
	}
}

func deckControlKey(mode cecdev.DeckControlMode) string {
	switch mode {
	case cecdev.DeckSkipForward:
		return input.KeySeekFwd
	case cecdev.DeckSkipReverse:
		return input.KeySeekBck
	case cecdev.DeckStop:
		return input.KeyStop
	default:
		return ""
	}
}

// handleButton maps press and release frames. With usekeyupdown unset a
// press emits a complete key press and the release is ignored.
func (w *Worker) handleButton(cmd cecdev.Command) {
	down := cmd.Opcode == cecdev.OpcodeUserControlPressed || cmd.Opcode == cecdev.OpcodeVendorRemoteButtonDown

	var key string
	if len(cmd.Parameters) > 0 {
		code := cecdev.UserControlCode(cmd.Parameters[0])
		if code == cecdev.UserControlReturn {
			key = input.KeyBack
		} else {
			key = KeyForCode(code)
		}
	} else if !down {
		// releases usually carry no button code
		w.mu.Lock()
		key = w.lastKey
		w.mu.Unlock()
	}

	if down {
		w.mu.Lock()
		w.lastKey = key
		w.mu.Unlock()
	}

	if key == "" {
		if len(cmd.Parameters) > 0 {
			w.logger.Debug("Unmapped CEC button", zap.Uint8("code", cmd.Parameters[0]))
		}
		return
	}

	useKeyUpDown := w.settings.Bool(SettingsSection, "usekeyupdown")
	switch {
	case useKeyUpDown && down:
		w.send(key, domain.KeyDown)
	case useKeyUpDown:
		w.send(key, domain.KeyUp)
	case down:
		w.send(key, domain.KeyPressed)
	}
}

func (w *Worker) handleStandby() {
	w.logger.Debug("Got a standby request")

	switch {
	case w.settings.Bool(SettingsSection, "suspendonstandby") && w.power.CanSuspend():
		if err := w.power.Suspend(); err != nil {
			w.logger.Error("Unable to suspend", zap.Error(err))
		}
	case w.settings.Bool(SettingsSection, "poweroffonstandby") && w.power.CanPowerOff():
		if err := w.power.PowerOff(); err != nil {
			w.logger.Error("Unable to power off", zap.Error(err))
		}
	}
}
