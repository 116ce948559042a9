package main

import (
	"log/slog"
	"machine"
	"strconv"
	"time"

	"github.com/jmacvey/picolcd/command"
	"github.com/jmacvey/picolcd/lcd"
	"github.com/jmacvey/picolcd/lineio"
	"github.com/jmacvey/picolcd/wordwrap"
)

const (
	btBaud = 9600 // HC-05 factory default

	pollInterval        = 5 * time.Millisecond
	consolePollInterval = 100 * time.Millisecond

	maxLine    = 48
	blinkTimes = 3
)

func main() {
	start := time.Now()
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	led := machine.GP15
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	// HC-05 module on UART0.
	bt := machine.UART0
	err := bt.Configure(machine.UARTConfig{
		BaudRate: btBaud,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	if err != nil {
		printErrForever(logger, "configure UART0", slog.Any("reason", err))
	}

	// Status display over I2C. Missing hardware degrades to
	// dispatch-only operation.
	err = machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})
	if err != nil {
		printErrForever(logger, "configure I2C", slog.Any("reason", err))
	}
	var renderer *wordwrap.Renderer
	screen, err := lcd.Probe(machine.I2C0)
	if err != nil {
		logger.Error("continuing without display", slog.Any("reason", err))
	} else {
		renderer = &wordwrap.Renderer{
			Surface: screen,
			Grid:    wordwrap.Grid{Columns: lcd.Columns, Rows: lcd.Rows},
		}
	}

	// Reused buffers so the dispatch loop does not grow the heap.
	var (
		reply      = make([]byte, 0, 64)
		statusLine = make([]byte, 0, lcd.Columns)
		modeLabel  = []byte("Mode:")
		errLine1   = []byte("Input not")
		errLine2   = []byte("recognized")
	)

	d := command.NewDispatcher()
	d.Register("ledon", command.Command{
		Mode: "LED on",
		Ack:  "OK led on",
		Run:  led.High,
	})
	d.Register("ledoff", command.Command{
		Mode: "LED off",
		Ack:  "OK led off",
		Run:  led.Low,
	})
	d.Register("blink", command.Command{
		Mode: "Blink",
		Ack:  "OK blinking",
		Run:  func() { blink(led) },
	})
	d.Register("status", command.Command{
		Mode: "Status",
		Ack:  "OK status",
		Run: func() {
			if screen == nil {
				return
			}
			statusLine = statusLine[:0]
			statusLine = append(statusLine, "up "...)
			statusLine = strconv.AppendUint(statusLine, uint64(time.Since(start)/time.Second), 10)
			statusLine = append(statusLine, 's')
			screen.Status([]byte("Status"), statusLine)
		},
	})

	btIn := lineio.NewReader(bt, maxLine)
	consoleIn := lineio.NewReader(machine.Serial, maxLine)
	logger.Info("btcommand ready", slog.Uint64("baud", btBaud))

	var lastConsolePoll time.Time
	for {
		if token, ok := btIn.Poll(); ok {
			cmd, known := d.Dispatch(token)
			logger.Info("command received",
				slog.String("token", string(token)),
				slog.Bool("recognized", known),
			)

			if screen != nil {
				if known {
					statusLine = append(statusLine[:0], cmd.Mode...)
					screen.Status(modeLabel, statusLine)
				} else {
					screen.Status(errLine1, errLine2)
				}
			}

			reply = append(reply[:0], cmd.Ack...)
			reply = append(reply, '\r', '\n')
			bt.Write(reply)

			if cmd.Run != nil {
				cmd.Run()
			}
		}

		// The console is a second input source on the same loop,
		// polled no more often than consolePollInterval.
		if time.Since(lastConsolePoll) >= consolePollInterval {
			lastConsolePoll = time.Now()
			if line, ok := consoleIn.Poll(); ok {
				logger.Info("console line", slog.Int("bytes", len(line)))
				if renderer != nil {
					renderer.Render(line)
				}
			}
		}

		time.Sleep(pollInterval)
	}
}

// blink toggles the LED a fixed number of times. Blocking is fine here:
// the loop is cooperative and serial input stays buffered meanwhile.
func blink(led machine.Pin) {
	for i := 0; i < blinkTimes; i++ {
		led.High()
		time.Sleep(150 * time.Millisecond)
		led.Low()
		time.Sleep(150 * time.Millisecond)
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
