// -*- tab-width:2 -*-

package callsim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteSample writes one value per line, no header.
func WriteSample(w io.Writer, s Sample) error {
	bw := bufio.NewWriter(w)

	for _, v := range s {
		if _, err := bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64) + "\n"); err != nil {
			return fmt.Errorf("write sample: %w", err)
		}
	}

	return bw.Flush()
}

// ReadSample reads what WriteSample wrote. Blank lines are skipped.
func ReadSample(r io.Reader) (Sample, error) {
	var out Sample

	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("read sample line %d: %w", line, err)
		}

		out = append(out, v)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read sample: %w", err)
	}

	return out, nil
}
