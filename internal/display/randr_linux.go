//go:build linux

package display

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// x11RandR implements randrAPI over a dedicated X connection
type x11RandR struct {
	conn            *xgb.Conn
	root            xproto.Window
	depth           int
	configTimestamp xproto.Timestamp
}

func newX11RandR() (*x11RandR, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	if err := randr.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init RandR extension: %w", err)
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return &x11RandR{
		conn:  conn,
		root:  screen.Root,
		depth: int(screen.RootDepth),
	}, nil
}

func (x *x11RandR) Resources() (randrResources, error) {
	res, err := randr.GetScreenResources(x.conn, x.root).Reply()
	if err != nil {
		return randrResources{}, fmt.Errorf("get screen resources: %w", err)
	}
	x.configTimestamp = res.ConfigTimestamp

	out := randrResources{
		Modes: make(map[uint32]randrModeInfo, len(res.Modes)),
		Depth: x.depth,
	}
	for _, m := range res.Modes {
		out.Modes[m.Id] = randrModeInfo{
			ID:       m.Id,
			Width:    m.Width,
			Height:   m.Height,
			DotClock: m.DotClock,
			HTotal:   m.Htotal,
			VTotal:   m.Vtotal,
			Flags:    m.ModeFlags,
		}
	}

	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(x.conn, output, res.ConfigTimestamp).Reply()
		if err != nil {
			return randrResources{}, fmt.Errorf("get output info: %w", err)
		}
		if info.Connection != randr.ConnectionConnected {
			continue
		}

		modes := make([]uint32, len(info.Modes))
		for i, m := range info.Modes {
			modes[i] = uint32(m)
		}
		out.Outputs = append(out.Outputs, randrOutput{
			ID:    uint32(output),
			Name:  string(info.Name),
			Crtc:  uint32(info.Crtc),
			Modes: modes,
		})
	}

	return out, nil
}

func (x *x11RandR) CrtcInfo(crtc uint32) (randrCrtc, error) {
	info, err := randr.GetCrtcInfo(x.conn, randr.Crtc(crtc), x.configTimestamp).Reply()
	if err != nil {
		return randrCrtc{}, fmt.Errorf("get crtc info: %w", err)
	}

	outputs := make([]uint32, len(info.Outputs))
	for i, o := range info.Outputs {
		outputs[i] = uint32(o)
	}
	return randrCrtc{
		X:        info.X,
		Y:        info.Y,
		Width:    info.Width,
		Height:   info.Height,
		Mode:     uint32(info.Mode),
		Rotation: info.Rotation,
		Outputs:  outputs,
	}, nil
}

func (x *x11RandR) SetCrtcMode(crtc, mode uint32, current randrCrtc) (uint8, error) {
	outputs := make([]randr.Output, len(current.Outputs))
	for i, o := range current.Outputs {
		outputs[i] = randr.Output(o)
	}

	reply, err := randr.SetCrtcConfig(x.conn, randr.Crtc(crtc), xproto.TimeCurrentTime, x.configTimestamp,
		current.X, current.Y, randr.Mode(mode), current.Rotation, outputs).Reply()
	if err != nil {
		return 0, fmt.Errorf("set crtc config: %w", err)
	}
	return reply.Status, nil
}

func (x *x11RandR) PrimaryOutput() (uint32, error) {
	reply, err := randr.GetOutputPrimary(x.conn, x.root).Reply()
	if err != nil {
		return 0, fmt.Errorf("get primary output: %w", err)
	}
	return uint32(reply.Output), nil
}

func (x *x11RandR) Close() {
	x.conn.Close()
}
