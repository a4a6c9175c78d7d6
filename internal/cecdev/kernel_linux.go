//go:build linux

package cecdev

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl requests of the kernel CEC framework, see linux/cec.h
const (
	cecAdapGetCaps     = 0xC04C6100
	cecAdapGetPhysAddr = 0x80026101
	cecAdapSetPhysAddr = 0x40026102
	cecAdapSetLogAddrs = 0xC05C6104
	cecTransmit        = 0xC0386105
	cecReceive         = 0xC0386106
	cecDQEvent         = 0xC0506107
	cecSetMode         = 0x40046109

	cecModeInitiator = 0x01
	cecModeFollower  = 0x10

	cecCapPhysAddr = 1 << 0
	cecCapLogAddrs = 1 << 1

	cecEventStateChange = 1
	cecEventLostMsgs    = 2

	cecVersion14    = 5
	cecVendorIDNone = 0xFFFFFFFF

	cecPhysAddrInvalid = 0xFFFF

	devicePattern = "/dev/cec*"
)

type cecCaps struct {
	Driver            [32]byte
	Name              [32]byte
	AvailableLogAddrs uint32
	Capabilities      uint32
	Version           uint32
}

type cecMsg struct {
	TxTs          uint64
	RxTs          uint64
	Len           uint32
	Timeout       uint32
	Sequence      uint32
	Flags         uint32
	Msg           [maxFrameSize]byte
	Reply         uint8
	RxStatus      uint8
	TxStatus      uint8
	TxArbLostCnt  uint8
	TxNackCnt     uint8
	TxLowDriveCnt uint8
	TxErrorCnt    uint8
}

type cecLogAddrs struct {
	LogAddr           [4]uint8
	LogAddrMask       uint16
	CecVersion        uint8
	NumLogAddrs       uint8
	VendorID          uint32
	Flags             uint32
	OSDName           [15]byte
	PrimaryDeviceType [4]uint8
	LogAddrType       [4]uint8
	AllDeviceTypes    [4]uint8
	Features          [4][12]uint8
}

type cecEvent struct {
	Ts    uint64
	Event uint32
	Flags uint32
	Raw   [16]uint32
}

// kernelLibrary drives /dev/cecN devices of the Linux CEC framework.
// Frames are read by one goroutine per open adapter, which is also the
// goroutine every callback runs on.
type kernelLibrary struct {
	cfg Configuration

	mu      sync.Mutex
	fd      int
	wakeR   int
	wakeW   int
	logAddr LogicalAddress
	wg      sync.WaitGroup
}

// Initialise creates a library instance bound to the kernel CEC framework
func Initialise(cfg Configuration) (Library, error) {
	matches, err := filepath.Glob(devicePattern)
	if err != nil {
		return nil, fmt.Errorf("list cec devices: %w", err)
	}
	if len(matches) == 0 && !kernelSupportsCEC() {
		return nil, ErrUnsupported
	}
	return &kernelLibrary{cfg: cfg, fd: -1, wakeR: -1, wakeW: -1}, nil
}

// kernelSupportsCEC reports whether the running kernel exposes the CEC class,
// in which case adapters may still be hot-plugged later.
func kernelSupportsCEC() bool {
	matches, _ := filepath.Glob("/sys/class/cec")
	return len(matches) > 0
}

func (k *kernelLibrary) log(level LogLevel, format string, args ...any) {
	if k.cfg.Callbacks.Log != nil {
		k.cfg.Callbacks.Log(LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
	}
}

func (k *kernelLibrary) alert(a Alert) {
	if k.cfg.Callbacks.Alert != nil {
		k.cfg.Callbacks.Alert(a)
	}
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func (k *kernelLibrary) DetectAdapters() []AdapterDescriptor {
	paths, err := filepath.Glob(devicePattern)
	if err != nil {
		return nil
	}

	var out []AdapterDescriptor
	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
		if err != nil {
			k.log(LogWarning, "unable to open %s: %v", path, err)
			continue
		}

		var caps cecCaps
		var phys uint16
		capsErr := ioctl(fd, cecAdapGetCaps, unsafe.Pointer(&caps))
		physErr := ioctl(fd, cecAdapGetPhysAddr, unsafe.Pointer(&phys))
		_ = unix.Close(fd)
		if capsErr != nil {
			k.log(LogWarning, "%s is not a CEC adapter: %v", path, capsErr)
			continue
		}
		if physErr != nil {
			phys = cecPhysAddrInvalid
		}

		out = append(out, AdapterDescriptor{
			Port:            path,
			Driver:          cString(caps.Driver[:]),
			Name:            cString(caps.Name[:]),
			PhysicalAddress: phys,
		})
	}
	return out
}

func (k *kernelLibrary) Open(port string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.fd >= 0 {
		k.log(LogWarning, "adapter already open")
		return false
	}

	fd, err := unix.Open(port, unix.O_RDWR|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		switch {
		case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
			k.alert(AlertPermissionError)
		case errors.Is(err, unix.EBUSY):
			k.alert(AlertPortBusy)
		}
		k.log(LogError, "unable to open %s: %v", port, err)
		return false
	}

	if err := k.configure(fd); err != nil {
		_ = unix.Close(fd)
		k.log(LogError, "unable to configure %s: %v", port, err)
		return false
	}

	var pipe [2]int
	if err := unix.Pipe2(pipe[:], unix.O_CLOEXEC|unix.O_NONBLOCK); err != nil {
		_ = unix.Close(fd)
		k.log(LogError, "unable to create wake pipe: %v", err)
		return false
	}

	k.fd, k.wakeR, k.wakeW = fd, pipe[0], pipe[1]
	k.log(LogNotice, "opened %s as logical address %d", port, k.logAddr)

	if k.cfg.ActivateSource {
		if err := k.activateSource(); err != nil {
			k.log(LogWarning, "unable to activate source: %v", err)
		}
	}

	k.wg.Add(1)
	go k.readLoop(fd, pipe[0])
	return true
}

func (k *kernelLibrary) configure(fd int) error {
	mode := uint32(cecModeInitiator | cecModeFollower)
	if err := ioctl(fd, cecSetMode, unsafe.Pointer(&mode)); err != nil {
		return fmt.Errorf("set mode: %w", err)
	}

	var caps cecCaps
	if err := ioctl(fd, cecAdapGetCaps, unsafe.Pointer(&caps)); err != nil {
		return fmt.Errorf("get caps: %w", err)
	}
	if caps.Capabilities&cecCapPhysAddr != 0 {
		if err := k.setPhysicalAddress(fd); err != nil {
			return err
		}
	}

	if caps.Capabilities&cecCapLogAddrs == 0 {
		// logical addresses are managed by the driver
		k.logAddr = AddressUnregistered
		return nil
	}

	la := cecLogAddrs{
		CecVersion:  cecVersion14,
		NumLogAddrs: 1,
		VendorID:    cecVendorIDNone,
	}
	copy(la.OSDName[:], k.cfg.DeviceName)
	switch k.cfg.DeviceType {
	case DeviceTypePlayback:
		la.PrimaryDeviceType[0], la.LogAddrType[0], la.AllDeviceTypes[0] = 4, 3, 0x10
	default:
		la.PrimaryDeviceType[0], la.LogAddrType[0], la.AllDeviceTypes[0] = 1, 1, 0x40
	}

	if err := ioctl(fd, cecAdapSetLogAddrs, unsafe.Pointer(&la)); err != nil {
		if errors.Is(err, unix.EBUSY) {
			// already configured by another follower, keep its addresses
			k.logAddr = AddressUnregistered
			return nil
		}
		return fmt.Errorf("set logical addresses: %w", err)
	}
	k.logAddr = LogicalAddress(la.LogAddr[0] & 0x0F)
	return nil
}

// setPhysicalAddress derives the address from the HDMI port when the adapter
// is plugged straight into the TV. Other topologies need EDID and are left alone.
func (k *kernelLibrary) setPhysicalAddress(fd int) error {
	port := k.cfg.HDMIPort
	if port < 1 || port > 15 || k.cfg.BaseDevice != AddressTV {
		return nil
	}

	phys := uint16(port) << 12
	if err := ioctl(fd, cecAdapSetPhysAddr, unsafe.Pointer(&phys)); err != nil {
		return fmt.Errorf("set physical address: %w", err)
	}
	k.log(LogNotice, "physical address set to %d.0.0.0", port)
	return nil
}

func (k *kernelLibrary) activateSource() error {
	var phys uint16
	if err := ioctl(k.fd, cecAdapGetPhysAddr, unsafe.Pointer(&phys)); err != nil {
		return fmt.Errorf("get physical address: %w", err)
	}
	if phys == cecPhysAddrInvalid {
		return errors.New("no physical address")
	}

	return k.transmit(Command{
		Initiator:   k.logAddr,
		Destination: AddressBroadcast,
		Opcode:      OpcodeActiveSource,
		OpcodeSet:   true,
		Parameters:  []byte{byte(phys >> 8), byte(phys)},
	})
}

func (k *kernelLibrary) transmit(cmd Command) error {
	frame, err := EncodeFrame(cmd)
	if err != nil {
		return err
	}

	var msg cecMsg
	msg.Len = uint32(copy(msg.Msg[:], frame))
	msg.Timeout = 1000
	if err := ioctl(k.fd, cecTransmit, unsafe.Pointer(&msg)); err != nil {
		return fmt.Errorf("transmit: %w", err)
	}
	k.log(LogTraffic, ">> %X", frame)
	return nil
}

func (k *kernelLibrary) readLoop(fd, wake int) {
	defer k.wg.Done()

	fds := []unix.PollFd{
		{Fd: int32(fd), Events: unix.POLLIN | unix.POLLPRI},
		{Fd: int32(wake), Events: unix.POLLIN},
	}
	for {
		if _, err := unix.Poll(fds, -1); err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			k.log(LogError, "poll failed: %v", err)
			k.alert(AlertConnectionLost)
			return
		}

		if fds[1].Revents != 0 {
			return
		}

		rev := fds[0].Revents
		if rev&(unix.POLLERR|unix.POLLHUP|unix.POLLNVAL) != 0 {
			k.log(LogError, "adapter disappeared")
			k.alert(AlertConnectionLost)
			return
		}
		if rev&unix.POLLPRI != 0 {
			k.dequeueEvent(fd)
		}
		if rev&unix.POLLIN != 0 {
			if !k.receive(fd) {
				k.alert(AlertConnectionLost)
				return
			}
		}
	}
}

func (k *kernelLibrary) receive(fd int) bool {
	var msg cecMsg
	if err := ioctl(fd, cecReceive, unsafe.Pointer(&msg)); err != nil {
		if errors.Is(err, unix.EAGAIN) {
			return true
		}
		k.log(LogError, "receive failed: %v", err)
		return !errors.Is(err, unix.ENODEV)
	}

	frame := msg.Msg[:min(int(msg.Len), maxFrameSize)]
	k.log(LogTraffic, "<< %X", frame)

	cmd, ok := DecodeFrame(frame)
	if !ok || !cmd.OpcodeSet {
		return true
	}
	if k.cfg.Callbacks.Command != nil {
		k.cfg.Callbacks.Command(cmd)
	}
	return true
}

func (k *kernelLibrary) dequeueEvent(fd int) {
	var ev cecEvent
	if err := ioctl(fd, cecDQEvent, unsafe.Pointer(&ev)); err != nil {
		return
	}

	switch ev.Event {
	case cecEventStateChange:
		phys := uint16(ev.Raw[0] & 0xFFFF)
		if phys == cecPhysAddrInvalid {
			k.log(LogWarning, "HDMI link lost")
			return
		}
		k.log(LogNotice, "physical address is now %x.%x.%x.%x",
			phys>>12, (phys>>8)&0xF, (phys>>4)&0xF, phys&0xF)
	case cecEventLostMsgs:
		k.log(LogWarning, "lost %d messages", ev.Raw[0])
	}
}

func (k *kernelLibrary) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.fd < 0 {
		return
	}

	_, _ = unix.Write(k.wakeW, []byte{0})
	k.wg.Wait()

	_ = unix.Close(k.fd)
	_ = unix.Close(k.wakeR)
	_ = unix.Close(k.wakeW)
	k.fd, k.wakeR, k.wakeW = -1, -1, -1
}

func (k *kernelLibrary) Destroy() {
	k.Close()
	k.cfg.Callbacks = Callbacks{}
}
