// Package batch handles batch lookups from stdin.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/hightemp/iso3166/country"
	"github.com/hightemp/iso3166/internal/output"
	"github.com/sirupsen/logrus"
)

// Mode selects how each input line is interpreted.
type Mode string

const (
	ModeCode    Mode = "code"
	ModeName    Mode = "name"
	ModeNumeric Mode = "numeric"
)

// ErrNotFound is reported for names and numeric codes with no country.
var ErrNotFound = errors.New("country not found")

// Resolve looks up a single input according to mode.
func Resolve(mode Mode, input string) *output.Result {
	switch mode {
	case ModeCode:
		c, err := country.Parse(input)
		if err != nil {
			return output.NewErrorResult(input, err)
		}
		return output.NewResult(input, c)

	case ModeName:
		c, ok := country.FromName(input)
		if !ok {
			return output.NewErrorResult(input, ErrNotFound)
		}
		return output.NewResult(input, c)

	case ModeNumeric:
		n, err := strconv.ParseUint(input, 10, 16)
		if err != nil {
			return output.NewErrorResult(input, fmt.Errorf("invalid numeric code %q", input))
		}
		c, ok := country.FromNumeric(uint16(n))
		if !ok {
			return output.NewErrorResult(input, ErrNotFound)
		}
		return output.NewResult(input, c)
	}

	return output.NewErrorResult(input, fmt.Errorf("unknown lookup mode %q", mode))
}

// Processor handles batch lookups.
type Processor struct {
	mode        Mode
	concurrency int
}

// NewProcessor creates a new batch processor.
func NewProcessor(mode Mode, concurrency int) *Processor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Processor{
		mode:        mode,
		concurrency: concurrency,
	}
}

// readLine strips the surrounding whitespace of an input line. The content
// itself is looked up verbatim. Blank lines are skipped.
func readLine(raw string) (string, bool) {
	line := strings.TrimSpace(raw)
	return line, line != ""
}

// ProcessInput reads lookups from input and writes results to output.
// It returns the number of failed lookups.
func (p *Processor) ProcessInput(ctx context.Context, r io.Reader, w io.Writer, jsonOutput bool) (int, error) {
	if p.concurrency > 1 {
		return p.processConcurrent(ctx, r, w, jsonOutput)
	}

	scanner := bufio.NewScanner(r)
	batch := &output.BatchResult{}

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return batch.Failed(), err
		}
		line, ok := readLine(scanner.Text())
		if !ok {
			continue
		}
		result := Resolve(p.mode, line)
		batch.Results = append(batch.Results, result)

		if !jsonOutput {
			// Stream output line by line
			fmt.Fprintln(w, result.FormatText())
		}
	}
	if err := scanner.Err(); err != nil {
		return batch.Failed(), err
	}

	logrus.WithFields(logrus.Fields{
		"mode":   p.mode,
		"total":  len(batch.Results),
		"failed": batch.Failed(),
	}).Debug("Batch processed")

	if jsonOutput {
		return batch.Failed(), writeJSON(w, batch)
	}
	return batch.Failed(), nil
}

// processConcurrent resolves all lines with a bounded number of workers and
// writes results in input order.
func (p *Processor) processConcurrent(ctx context.Context, r io.Reader, w io.Writer, jsonOutput bool) (int, error) {
	scanner := bufio.NewScanner(r)
	var lines []string

	for scanner.Scan() {
		if line, ok := readLine(scanner.Text()); ok {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, err
	}

	results := make([]*output.Result, len(lines))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.concurrency)

	for i, line := range lines {
		wg.Add(1)
		go func(idx int, input string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				results[idx] = output.NewErrorResult(input, ctx.Err())
				return
			}
			defer func() { <-sem }()
			results[idx] = Resolve(p.mode, input)
		}(i, line)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	batch := &output.BatchResult{Results: results}

	logrus.WithFields(logrus.Fields{
		"mode":        p.mode,
		"total":       len(results),
		"failed":      batch.Failed(),
		"concurrency": p.concurrency,
	}).Debug("Batch processed")

	if jsonOutput {
		return batch.Failed(), writeJSON(w, batch)
	}
	for _, result := range results {
		fmt.Fprintln(w, result.FormatText())
	}
	return batch.Failed(), nil
}

func writeJSON(w io.Writer, batch *output.BatchResult) error {
	jsonStr, err := batch.FormatJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, jsonStr)
	return err
}
