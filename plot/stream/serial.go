// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.bug.st/serial"
)

// DefaultBaudRate is the serial line speed of the sampling device.
const DefaultBaudRate = 9600

// SerialMode returns the line settings for the given baud rate:
// 8 data bits, no parity and one stop bit, without flow control.
func SerialMode(baud int) *serial.Mode {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	return &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

// OpenDevice opens the serial port at the given path with
// [SerialMode] settings as a source. A regular file, such as a
// recorded capture, is read as is.
func OpenDevice(path string, baud int) (*ReaderSource, io.Closer, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if st.Mode().IsRegular() {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return NewReaderSource(f), f, nil
	}
	mode := SerialMode(baud)
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, nil, fmt.Errorf("open serial port %s: %w", path, err)
	}
	slog.Info("opened serial port", "port", path, "baud", mode.BaudRate)
	return NewReaderSource(port), port, nil
}

// Ports returns the names of the serial ports of the system.
func Ports() ([]string, error) {
	return serial.GetPortsList()
}
