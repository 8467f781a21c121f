package net

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// CSVLogger records one row per epoch (epoch, loss, learning rate, elapsed
// seconds) to a CSV file while Fit runs.
type CSVLogger struct {
	BaseCallback
	Filename string
	Append   bool

	file   *os.File
	writer *csv.Writer
	start  time.Time
}

// NewCSVLogger creates a new CSVLogger.
func NewCSVLogger(filename string, append bool) *CSVLogger {
	return &CSVLogger{
		Filename: filename,
		Append:   append,
	}
}

func (c *CSVLogger) OnTrainBegin(n *Network) {
	mode := os.O_CREATE | os.O_WRONLY
	if c.Append {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}

	file, err := os.OpenFile(c.Filename, mode, 0o644)
	if err != nil {
		fmt.Printf("CSVLogger: failed to open file %s: %v\n", c.Filename, err)
		return
	}
	c.file = file
	c.writer = csv.NewWriter(file)
	c.start = time.Now()

	// header only goes into an empty file
	if info, err := file.Stat(); err == nil && info.Size() == 0 {
		c.write([]string{"epoch", "loss", "learning_rate", "time_seconds"})
	}
}

func (c *CSVLogger) OnEpochEnd(epoch int, loss float64, n *Network) {
	if c.writer == nil {
		return
	}
	c.write([]string{
		strconv.Itoa(epoch),
		strconv.FormatFloat(loss, 'f', 6, 64),
		strconv.FormatFloat(n.LearningRate(), 'g', -1, 64),
		strconv.FormatFloat(time.Since(c.start).Seconds(), 'f', 2, 64),
	})
}

func (c *CSVLogger) OnTrainEnd(n *Network) {
	if c.file == nil {
		return
	}
	c.writer.Flush()
	c.file.Close()
	c.file = nil
	c.writer = nil
}

func (c *CSVLogger) write(record []string) {
	if err := c.writer.Write(record); err != nil {
		fmt.Printf("CSVLogger: failed to write record: %v\n", err)
	}
	c.writer.Flush()
}
