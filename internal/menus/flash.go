package menus

import (
	"io"
	"path/filepath"
	"strconv"

	"kmaint/internal/klipper"
	"kmaint/internal/menu"
	"kmaint/internal/ui"
)

// FlashMethod chooses how the firmware reaches the board. With
// buildFirst set it compiles the firmware before flashing, backing the
// combined build + flash entry.
type FlashMethod struct {
	menu.Crumb
	d          *Deps
	buildFirst bool
	conn       *MCUConnection
}

func NewFlashMethod(d *Deps, buildFirst bool) *FlashMethod {
	m := &FlashMethod{d: d, buildFirst: buildFirst}
	m.conn = NewMCUConnection(d, m.flashDevice)
	return m
}

func (m *FlashMethod) Name() string {
	if m.buildFirst {
		return "build_flash_method"
	}
	return "flash_method"
}

func (m *FlashMethod) Footer() menu.FooterKind { return menu.FooterBackHelp }

func (m *FlashMethod) InputLabel() string { return "Select flash method" }

func (m *FlashMethod) title() string {
	if m.buildFirst {
		return " [ Build + Flash ] "
	}
	return " [ Flash Firmware ] "
}

func (m *FlashMethod) Body(w io.Writer) {
	b := ui.NewBox(w, m.d.Palette)
	b.Top()
	b.Title(m.title(), m.d.Palette.Yellow)
	b.Divider()
	b.Row("Select the flash method:")
	b.Blank()
	b.Row(" 1) [Regular flashing]")
	b.Row("     USB or UART connection")
	b.Blank()
	b.Row(" 2) [SD card flashing]")
	b.Row("     copy the image manually")
}

func (m *FlashMethod) Options() menu.Table {
	return menu.Table{
		"1": menu.Instance(m.conn),
		"2": menu.Call(m.sdCard),
	}
}

// Help explains the two methods without leaving the menu.
func (m *FlashMethod) Help(w io.Writer) {
	b := ui.NewBox(w, m.d.Palette)
	b.Top()
	b.Title(" [ Help: Flash Method ] ", m.d.Palette.Yellow)
	b.Divider()
	b.Row("Regular flashing writes the firmware over the")
	b.Row("board's USB or UART connection with make flash.")
	b.Blank()
	b.Row("SD card flashing is for boards without a usable")
	b.Row("bootloader: copy the image to a card and power")
	b.Row("cycle the board.")
	b.Bottom()
}

func (m *FlashMethod) flashDevice(device string) error {
	d := m.d
	if m.buildFirst {
		return d.Firmware.BuildAndFlash(d.Ctx, d.Config.KlipperDir, d.Config.BuildJobs, device, klipper.FlashRegular)
	}
	return d.Firmware.Flash(d.Ctx, d.Config.KlipperDir, device, klipper.FlashRegular)
}

func (m *FlashMethod) sdCard() error {
	d := m.d
	if m.buildFirst {
		return d.Firmware.BuildAndFlash(d.Ctx, d.Config.KlipperDir, d.Config.BuildJobs, "", klipper.FlashSDCard)
	}
	return d.Firmware.Flash(d.Ctx, d.Config.KlipperDir, "", klipper.FlashSDCard)
}

// MCUConnection lists the discovered serial devices and hands the
// selected one to act. It is built once per parent menu and rescans on
// demand, so the numbering stays stable while the user reads it.
type MCUConnection struct {
	menu.Crumb
	d       *Deps
	act     func(device string) error
	devices []string
}

func NewMCUConnection(d *Deps, act func(device string) error) *MCUConnection {
	m := &MCUConnection{d: d, act: act}
	m.rescan()
	return m
}

func (m *MCUConnection) rescan() {
	m.devices = klipper.Discover(m.d.DevRoot)
}

func (m *MCUConnection) Name() string { return "mcu_connection" }

func (m *MCUConnection) Footer() menu.FooterKind { return menu.FooterBack }

func (m *MCUConnection) InputLabel() string { return "Select device" }

// HideBanner keeps the picker compact between its parent's screens.
func (m *MCUConnection) HideBanner() bool { return true }

func (m *MCUConnection) Body(w io.Writer) {
	b := ui.NewBox(w, m.d.Palette)
	b.Top()
	b.Title(" [ MCU Connection ] ", m.d.Palette.Yellow)
	b.Divider()
	if len(m.devices) == 0 {
		b.Row("No serial devices found.")
	} else {
		b.Row("Connected serial devices:")
		for i, dev := range m.devices {
			b.Rowf(" %d) %s", i+1, filepath.Base(dev))
		}
	}
	b.Blank()
	b.Row("ENTER to rescan")
}

func (m *MCUConnection) Options() menu.Table {
	t := menu.Table{}
	for i, dev := range m.devices {
		t[strconv.Itoa(i+1)] = menu.Call(func() error { return m.act(dev) })
	}
	return t
}

// Default rescans, so plugging a board in does not require backing out.
func (m *MCUConnection) Default() menu.Option {
	return menu.Call(func() error {
		m.rescan()
		return nil
	})
}
