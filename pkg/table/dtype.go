package table

import (
	"strconv"
	"strings"

	"github.com/aretw0/datagate/pkg/schema"
)

// missingMarkers are the cell values treated as missing data.
var missingMarkers = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

var boolValues = map[string]bool{
	"True": true, "TRUE": true, "true": true,
	"False": true, "FALSE": true, "false": true,
}

// IsMissing reports whether a raw cell counts as missing data.
func IsMissing(v string) bool {
	return missingMarkers[v]
}

// InferDtype returns the dtype tag for a column of raw values.
//
// Integer columns with missing values widen to float64, boolean columns with missing
// values fall back to object, and an all-missing column is float64. A column without
// any rows is object. Integer literals that fit neither int64 nor uint64 as a whole
// column are object.
func InferDtype(values []string) string {
	if len(values) == 0 {
		return schema.Object
	}

	var (
		present   int
		missing   bool
		allInt    = true
		allUint   = true
		allIntLit = true
		allFloat  = true
		allBool   = true
	)

	for _, raw := range values {
		if IsMissing(raw) {
			missing = true
			continue
		}
		present++
		v := strings.TrimSpace(raw)

		if allBool && !boolValues[v] {
			allBool = false
		}
		if allInt {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				allInt = false
			}
		}
		if allUint {
			if _, err := strconv.ParseUint(strings.TrimPrefix(v, "+"), 10, 64); err != nil {
				allUint = false
			}
		}
		if allIntLit && !isIntLiteral(v) {
			allIntLit = false
		}
		if allFloat && !isFloat(v) {
			allFloat = false
		}
		if !allBool && !allInt && !allUint && !allFloat {
			return schema.Object
		}
	}

	switch {
	case present == 0:
		return schema.Float64
	case allBool:
		if missing {
			return schema.Object
		}
		return schema.Bool
	case allInt:
		if missing {
			return schema.Float64
		}
		return schema.Int64
	case allUint:
		if missing {
			return schema.Float64
		}
		return schema.Uint64
	case allIntLit && !missing:
		// overflowed integers
		return schema.Object
	case allFloat:
		return schema.Float64
	default:
		return schema.Object
	}
}

// isFloat accepts decimal and exponent notation plus inf/nan spellings,
// but not Go-only forms such as hex floats or digit separators.
func isFloat(v string) bool {
	if v == "" || strings.ContainsAny(v, "xX_pP") {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

// isIntLiteral reports whether v is an optionally signed run of decimal digits.
func isIntLiteral(v string) bool {
	if v != "" && (v[0] == '+' || v[0] == '-') {
		v = v[1:]
	}
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}
