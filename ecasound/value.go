package ecasound

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatValue returns the shortest string representation of a parameter
// value that does not lose precision.
//
// The value is parsed as a float64. Integral values are rendered as plain
// integers of arbitrary magnitude ("1.0" becomes "1", "1e20" becomes
// "100000000000000000000"). Other values use the shortest decimal that
// parses back to the same float64, switching to exponent notation below
// 1e-4 ("0.5", "1e-05").
func FormatValue(value string) (string, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return "", &ValueError{Value: value, Reason: "not a number"}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", &ValueError{Value: value, Reason: "not a finite number"}
	}

	if f == math.Trunc(f) {
		if f >= math.MinInt64 && f < math.MaxInt64 {
			return strconv.FormatInt(int64(f), 10), nil
		}
		i, _ := big.NewFloat(f).Int(nil)
		return i.String(), nil
	}

	// A non-integral float64 is always below 2^52, so only the small end
	// needs exponent notation.
	if math.Abs(f) < 1e-4 {
		return strconv.FormatFloat(f, 'e', -1, 64), nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}
