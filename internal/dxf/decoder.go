package dxf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DXF group codes used by the decoder.
const (
	codeEntityType = 0
	codeValue      = 1
	codeValueCont  = 3 // MTEXT continuation chunks, emitted before the final 1 group
	codeLayer      = 8
	codeX          = 10
	codeY          = 20
	codeColor      = 62
	codeName       = 2
)

// Load decodes all text labels from the file at path. Every returned label has
// its File field set to path.
func Load(path string) ([]Label, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	labels, err := Decode(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	for i := range labels {
		labels[i].File = path
	}
	return labels, nil
}

// Decode reads an ASCII DXF stream as alternating group-code/value line pairs
// and returns the TEXT and MTEXT labels found in the ENTITIES section, in
// stream order.
func Decode(r io.Reader) ([]Label, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		labels     []Label
		line       int
		section    string
		expectName bool // next pair names the section just opened
		cur        *Label
		pending    strings.Builder // MTEXT value assembled from 3/1 groups
	)

	flush := func() {
		if cur == nil {
			return
		}
		cur.Value = pending.String()
		labels = append(labels, *cur)
		cur = nil
		pending.Reset()
	}

	for sc.Scan() {
		line++
		code, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return nil, &LoadError{Line: line, Err: fmt.Errorf("malformed group code %q", strings.TrimSpace(sc.Text()))}
		}
		if !sc.Scan() {
			return nil, &LoadError{Line: line, Err: fmt.Errorf("group code %d has no value line", code)}
		}
		line++
		val := strings.TrimRight(sc.Text(), "\r")

		if expectName {
			expectName = false
			if code == codeName {
				section = strings.TrimSpace(val)
				continue
			}
			// Fall through: a section without a 2 group stays unnamed.
		}

		if code == codeEntityType {
			flush()
			switch strings.TrimSpace(val) {
			case "SECTION":
				expectName = true
			case "ENDSEC":
				section = ""
			case "EOF":
				return labels, sc.Err()
			case "TEXT", "MTEXT":
				if section == "ENTITIES" {
					cur = &Label{}
				}
			}
			continue
		}
		if cur == nil {
			continue
		}

		switch code {
		case codeX:
			cur.X, err = parseCoord(val)
		case codeY:
			cur.Y, err = parseCoord(val)
		case codeValue, codeValueCont:
			pending.WriteString(val)
		case codeLayer:
			cur.Layer = strings.TrimSpace(val)
		case codeColor:
			var n int64
			n, err = strconv.ParseInt(strings.TrimSpace(val), 10, 16)
			if err == nil {
				c := int16(n)
				cur.Color = &c
			}
		}
		if err != nil {
			return nil, &LoadError{Line: line, Err: fmt.Errorf("group code %d: malformed value %q", code, val)}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Line: line, Err: err}
	}
	flush()
	return labels, nil
}

func parseCoord(val string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(val), 64)
}
