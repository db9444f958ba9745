package dataset

import (
	"fmt"

	"github.com/SenseUnit/corpusgen/logging"
	"github.com/SenseUnit/corpusgen/util"
)

func FileName(n int) string {
	return fmt.Sprintf("ip%d.txt", n)
}

// Write stores ds in dir as ip<N>.txt, one address per line with no
// trailing newline, and returns the file path.
func Write(dir string, ds *Dataset) (string, error) {
	path, err := util.ResolveIn(dir, FileName(ds.Cardinality))
	if err != nil {
		return "", err
	}
	if err := util.WriteLines(path, ds.Lines(), false); err != nil {
		return "", fmt.Errorf("can't write corpus of %d addresses: %w", ds.Cardinality, err)
	}
	return path, nil
}

// GenerateAll assembles and writes one corpus per cardinality, in order,
// and returns the written paths. It stops at the first failure.
func (s *Session) GenerateAll(dir string, cardinalities []int) ([]string, error) {
	paths := make([]string, 0, len(cardinalities))
	for _, n := range cardinalities {
		ds, err := s.Assemble(n)
		if err != nil {
			return paths, fmt.Errorf("corpus of %d addresses: %w", n, err)
		}
		path, err := Write(dir, ds)
		if err != nil {
			return paths, err
		}
		logging.Info("address corpus written", "cardinality", n, "blocks", len(ds.Blocks), "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}
