package tle

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/orbitops-data/orbitops/internal/monitoring"
)

// Parse reads line-of-three element blocks from r: an optional name line
// followed by two 69-column data lines beginning with '1' and '2'. Malformed
// blocks are skipped; an empty or truncated stream ends parsing.
func Parse(r io.Reader) ([]TLE, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading element data: %w", err)
	}

	var out []TLE
	for i := 0; i < len(lines); {
		name := ""
		j := i
		if !strings.HasPrefix(lines[j], "1 ") {
			name = strings.TrimSpace(lines[j])
			j++
		}
		if j+1 >= len(lines) {
			break
		}
		line1, line2 := lines[j], lines[j+1]
		if !strings.HasPrefix(line1, "1 ") || !strings.HasPrefix(line2, "2 ") {
			monitoring.Logf("tle: skipping malformed element block at line %d (%q)", i, name)
			i++
			continue
		}

		rec, err := ParseLines(name, line1, line2)
		if err != nil {
			monitoring.Logf("tle: skipping element block %q: %v", name, err)
			i = j + 2
			continue
		}
		out = append(out, rec)
		i = j + 2
	}

	return out, nil
}

// ParseFile parses element blocks from a file on disk.
func ParseFile(path string) ([]TLE, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening element file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// ParseLines parses one element record from its name line and two data lines.
// Angles are converted to radians and mean motion to rad/min.
func ParseLines(name, line1, line2 string) (TLE, error) {
	var rec TLE
	if len(line1) < 63 || len(line2) < 63 {
		return rec, fmt.Errorf("data line too short (%d/%d columns)", len(line1), len(line2))
	}

	rec.Name = strings.TrimSpace(name)

	catalog, err := strconv.Atoi(strings.TrimSpace(line1[2:7]))
	if err != nil {
		return rec, fmt.Errorf("invalid catalog number %q: %w", line1[2:7], err)
	}
	rec.CatalogNumber = catalog
	rec.IntlDesignator = strings.TrimSpace(line1[9:17])

	year2, err := strconv.Atoi(strings.TrimSpace(line1[18:20]))
	if err != nil {
		return rec, fmt.Errorf("invalid epoch year %q: %w", line1[18:20], err)
	}
	if year2 < 57 {
		rec.EpochYear = 2000 + year2
	} else {
		rec.EpochYear = 1900 + year2
	}
	rec.EpochDay, err = strconv.ParseFloat(strings.TrimSpace(line1[20:32]), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid epoch day %q: %w", line1[20:32], err)
	}
	rec.EpochJD = epochToJD(rec.EpochYear, rec.EpochDay)

	rec.MeanMotionDot, err = parseSignedFloat(line1[33:43])
	if err != nil {
		return rec, fmt.Errorf("invalid mean motion derivative: %w", err)
	}
	rec.MeanMotionDDot, err = parseExponential(line1[44:52])
	if err != nil {
		return rec, fmt.Errorf("invalid mean motion second derivative: %w", err)
	}
	rec.Bstar, err = parseExponential(line1[53:61])
	if err != nil {
		return rec, fmt.Errorf("invalid drag term: %w", err)
	}

	inclDeg, err := strconv.ParseFloat(strings.TrimSpace(line2[8:16]), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid inclination: %w", err)
	}
	raanDeg, err := strconv.ParseFloat(strings.TrimSpace(line2[17:25]), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid RAAN: %w", err)
	}
	ecc, err := strconv.ParseFloat("0."+strings.TrimSpace(line2[26:33]), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid eccentricity: %w", err)
	}
	argpDeg, err := strconv.ParseFloat(strings.TrimSpace(line2[34:42]), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid argument of perigee: %w", err)
	}
	maDeg, err := strconv.ParseFloat(strings.TrimSpace(line2[43:51]), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid mean anomaly: %w", err)
	}
	nRevDay, err := strconv.ParseFloat(strings.TrimSpace(line2[52:63]), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid mean motion: %w", err)
	}
	if nRevDay <= 0 {
		return rec, fmt.Errorf("mean motion must be positive, got %g rev/day", nRevDay)
	}

	rec.Inclination = inclDeg * Deg2Rad
	rec.RAAN = raanDeg * Deg2Rad
	rec.Eccentricity = ecc
	rec.ArgPerigee = argpDeg * Deg2Rad
	rec.MeanAnomaly = maDeg * Deg2Rad
	rec.MeanMotion = nRevDay * TwoPi / MinPerDay

	if len(line2) >= 68 {
		if rev, err := strconv.Atoi(strings.TrimSpace(line2[63:68])); err == nil {
			rec.RevNumber = rev
		}
	}

	return rec, nil
}

// parseSignedFloat parses a field that may carry a bare leading sign and an
// implied leading zero, e.g. " .00016717" or "-.00002182".
func parseSignedFloat(s string) (float64, error) {
	str := strings.TrimSpace(s)
	if str == "" {
		return 0, nil
	}
	neg := false
	switch str[0] {
	case '-':
		neg = true
		str = str[1:]
	case '+':
		str = str[1:]
	}
	str = strings.TrimSpace(str)
	if str == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

// parseExponential decodes the implicit-exponent field "mmmmm±e" meaning
// ±0.mmmmm · 10^±e, as used for the drag and n-double-dot terms.
func parseExponential(s string) (float64, error) {
	str := strings.TrimSpace(s)
	if str == "" {
		return 0, nil
	}

	sign := 1.0
	switch str[0] {
	case '-':
		sign = -1.0
		str = str[1:]
	case '+':
		str = str[1:]
	}

	expPos := strings.LastIndexAny(str, "+-")
	if expPos <= 0 {
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return 0, err
		}
		return sign * v, nil
	}

	mantissa, err := strconv.ParseFloat("0."+strings.TrimSpace(str[:expPos]), 64)
	if err != nil {
		return 0, fmt.Errorf("bad mantissa %q: %w", str[:expPos], err)
	}
	exp, err := strconv.Atoi(str[expPos:])
	if err != nil {
		return 0, fmt.Errorf("bad exponent %q: %w", str[expPos:], err)
	}
	return sign * mantissa * math.Pow(10, float64(exp)), nil
}
