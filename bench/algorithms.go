package bench

import (
	"fmt"
	"strings"
)

type Algorithm string

const (
	LPRC Algorithm = "lprc"
	PSRC Algorithm = "psrc"
)

type AlgorithmList = []Algorithm

var FullList = AlgorithmList{
	LPRC,
	PSRC,
}

var DefaultList = FullList
var DefaultListString = ListToString(DefaultList)
var NameToAlgorithm map[string]Algorithm

func init() {
	NameToAlgorithm = make(map[string]Algorithm)
	for _, alg := range FullList {
		NameToAlgorithm[string(alg)] = alg
	}
}

func ListToString(lst AlgorithmList) string {
	var b strings.Builder
	var firstPrinted bool
	for _, alg := range lst {
		if firstPrinted {
			b.WriteByte(':')
		} else {
			firstPrinted = true
		}
		b.WriteString(string(alg))
	}
	return b.String()
}

func StringToList(str string) (AlgorithmList, error) {
	if str == "" {
		return nil, nil
	}
	return NamesToList(strings.Split(str, ":"))
}

func NamesToList(names []string) (AlgorithmList, error) {
	var res AlgorithmList
	for _, name := range names {
		if alg, ok := NameToAlgorithm[strings.ToLower(name)]; ok {
			res = append(res, alg)
		} else {
			return nil, fmt.Errorf("unknown algorithm: %q", name)
		}
	}
	return res, nil
}
