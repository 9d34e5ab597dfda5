package klipper

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"kmaint/internal/shell"
	"kmaint/internal/store"
)

// FlashMethod selects how built firmware reaches the board.
type FlashMethod string

const (
	// FlashRegular writes over the serial connection with make flash.
	FlashRegular FlashMethod = "regular"
	// FlashSDCard prints manual copy instructions for boards that only
	// boot from a card.
	FlashSDCard FlashMethod = "sdcard"
)

// Service drives firmware builds and flashes in the Klipper source
// tree, journaling each one in the history ledger.
type Service struct {
	run    shell.Runner
	db     *store.DB
	out    io.Writer
	logger *zap.Logger
}

func NewService(run shell.Runner, db *store.DB, out io.Writer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{run: run, db: db, out: out, logger: logger}
}

// Build compiles the firmware in dir: clean, interactive menuconfig,
// then a parallel make.
func (s *Service) Build(ctx context.Context, dir string, jobs int) error {
	if jobs < 1 {
		jobs = 1
	}

	id, err := s.db.BeginAction(store.KindFirmwareBuild, "klipper")
	if err != nil {
		return fmt.Errorf("journal build: %w", err)
	}

	err = s.buildSteps(ctx, dir, jobs)
	if err != nil {
		_ = s.db.FinishAction(id, store.StatusFailed, err.Error())
		return err
	}
	if err := s.db.FinishAction(id, store.StatusOK, fmt.Sprintf("built with %d jobs", jobs)); err != nil {
		return fmt.Errorf("journal build: %w", err)
	}
	s.logger.Info("firmware built", zap.String("dir", dir), zap.Int("jobs", jobs))
	return nil
}

func (s *Service) buildSteps(ctx context.Context, dir string, jobs int) error {
	if err := s.run.Run(ctx, dir, "make", "clean"); err != nil {
		return fmt.Errorf("make clean: %w", err)
	}
	// menuconfig owns the terminal until the user saves the config.
	if err := s.run.RunInteractive(ctx, dir, "make", "menuconfig"); err != nil {
		return fmt.Errorf("make menuconfig: %w", err)
	}
	if err := s.run.Run(ctx, dir, "make", "-j", strconv.Itoa(jobs)); err != nil {
		return fmt.Errorf("make: %w", err)
	}
	return nil
}

// Flash writes the built firmware to device using the given method.
// The device path must exist for the regular method.
func (s *Service) Flash(ctx context.Context, dir, device string, method FlashMethod) error {
	if method == FlashRegular {
		if err := CheckDevice(device); err != nil {
			return err
		}
	}

	id, err := s.db.BeginAction(store.KindFirmwareFlash, device)
	if err != nil {
		return fmt.Errorf("journal flash: %w", err)
	}

	var detail string
	switch method {
	case FlashRegular:
		if err := s.run.Run(ctx, dir, "make", "flash", "FLASH_DEVICE="+device); err != nil {
			_ = s.db.FinishAction(id, store.StatusFailed, err.Error())
			return fmt.Errorf("make flash: %w", err)
		}
		detail = "flashed over " + device
	case FlashSDCard:
		s.sdCardGuidance(dir)
		detail = "sdcard guidance shown"
	default:
		err := fmt.Errorf("unknown flash method %q", method)
		_ = s.db.FinishAction(id, store.StatusFailed, err.Error())
		return err
	}

	if err := s.db.FinishAction(id, store.StatusOK, detail); err != nil {
		return fmt.Errorf("journal flash: %w", err)
	}
	s.logger.Info("firmware flashed",
		zap.String("device", device),
		zap.String("method", string(method)))
	return nil
}

func (s *Service) sdCardGuidance(dir string) {
	fmt.Fprintf(s.out, "The firmware image is at %s/out/klipper.bin\n", dir)
	fmt.Fprintln(s.out, "Copy it to the SD card as firmware.bin, insert the card")
	fmt.Fprintln(s.out, "and power-cycle the board to flash.")
}

// BuildAndFlash chains Build and Flash as one action.
func (s *Service) BuildAndFlash(ctx context.Context, dir string, jobs int, device string, method FlashMethod) error {
	if err := s.Build(ctx, dir, jobs); err != nil {
		return err
	}
	return s.Flash(ctx, dir, device, method)
}

// QueryMCU reports the identifier of a connected MCU, which for USB
// devices is the stable by-id path itself.
func (s *Service) QueryMCU(device string) error {
	id, err := s.db.BeginAction(store.KindMCUQuery, device)
	if err != nil {
		return fmt.Errorf("journal query: %w", err)
	}
	fmt.Fprintf(s.out, "MCU ID: %s\n", device)
	if err := s.db.FinishAction(id, store.StatusOK, device); err != nil {
		return fmt.Errorf("journal query: %w", err)
	}
	return nil
}
