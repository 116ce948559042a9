package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/jmacvey/picolcd/lcd"
	"github.com/jmacvey/picolcd/lineio"
	"github.com/jmacvey/picolcd/wordwrap"
)

const (
	pollInterval = 5 * time.Millisecond
	pagePause    = 3 * time.Second
	maxLine      = 80 // longest console line kept in one piece
)

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})
	if err != nil {
		printErrForever(logger, "configure I2C", slog.Any("reason", err))
	}

	var renderer *wordwrap.Renderer
	screen, err := lcd.Probe(machine.I2C0)
	if err != nil {
		// No display is not fatal: keep consuming input, just skip
		// rendering.
		logger.Error("continuing without display", slog.Any("reason", err))
	} else {
		renderer = &wordwrap.Renderer{
			Surface:   screen,
			Grid:      wordwrap.Grid{Columns: lcd.Columns, Rows: lcd.Rows},
			PagePause: pagePause,
		}
	}

	in := lineio.NewReader(machine.Serial, maxLine)
	logger.Info("serialecho ready",
		slog.Int("columns", lcd.Columns),
		slog.Int("rows", lcd.Rows),
	)

	for {
		if line, ok := in.Poll(); ok {
			logger.Info("line received", slog.Int("bytes", len(line)))
			if renderer != nil {
				// Blocks through any page pauses; input stays
				// buffered on the UART meanwhile.
				renderer.Render(line)
			}
		}
		time.Sleep(pollInterval)
	}
}

// printErrForever logs the error at 1Hz forever, so the message is seen
// even when the serial monitor attaches late. It never returns.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
