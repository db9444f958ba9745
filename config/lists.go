package config

import (
	"fmt"
	"strconv"
	"strings"
)

func CardinalitiesToString(lst []int) string {
	var b strings.Builder
	var firstPrinted bool
	for _, n := range lst {
		if firstPrinted {
			b.WriteByte(':')
		} else {
			firstPrinted = true
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// StringToCardinalities parses a colon-separated list such as "8:16:32".
func StringToCardinalities(str string) ([]int, error) {
	if str == "" {
		return []int{}, nil
	}
	parts := strings.Split(str, ":")
	res := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad cardinality %q: %w", part, err)
		}
		res = append(res, n)
	}
	return res, nil
}

func EpsilonsToString(lst []float64) string {
	parts := make([]string, 0, len(lst))
	for _, e := range lst {
		parts = append(parts, strconv.FormatFloat(e, 'g', -1, 64))
	}
	return strings.Join(parts, ":")
}

func StringToEpsilons(str string) ([]float64, error) {
	if str == "" {
		return []float64{}, nil
	}
	parts := strings.Split(str, ":")
	res := make([]float64, 0, len(parts))
	for _, part := range parts {
		e, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("bad epsilon %q: %w", part, err)
		}
		res = append(res, e)
	}
	return res, nil
}
