package bench

// ResultRow and Result mirror the JSON written by
// `prefix-search fullbenchmark -o <file>`: an array with one Result per
// epsilon value. Times are milliseconds, sizes are bits.
type ResultRow struct {
	Prefix            string
	PrefixedWordCount int
	SearchTime        float64
}

type Result struct {
	InitTime             float64
	Epsilon              float64
	StructureSize        map[string]uint64
	UncompressedDataSize uint64
	PrefixResult         []ResultRow
	TotalSearchTime      float64
}

// Row is one line of a per-epsilon summary table.
type Row struct {
	Dataset          string
	Algorithm        Algorithm
	InitTime         float64
	StructureSize    uint64
	UncompressedSize uint64
	WordsCount       int
	AvgSearchTime    float64
}

var RowHeader = []string{
	"dataset",
	"algorithm",
	"init time",
	"structure size",
	"uncompressed data size",
	"words count",
	"average search time",
}

func (res *Result) Summarize(dataset string, alg Algorithm) Row {
	row := Row{
		Dataset:          dataset,
		Algorithm:        alg,
		InitTime:         res.InitTime,
		UncompressedSize: res.UncompressedDataSize,
	}
	for _, size := range res.StructureSize {
		row.StructureSize += size
	}
	for _, pr := range res.PrefixResult {
		row.WordsCount += pr.PrefixedWordCount
	}
	if len(res.PrefixResult) > 0 {
		row.AvgSearchTime = res.TotalSearchTime / float64(len(res.PrefixResult))
	}
	return row
}
