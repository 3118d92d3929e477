package benchmark

// Params holds the per-run options selected on the command line. Immutable
// for the duration of a run.
type Params struct {
	Large bool // operate on the single large file
	Small bool // operate on the small-file batch

	Size        int64 // large file size in bytes
	Times       int   // repeat count for large-file downloads
	Concurrency int   // worker bound for small-file batches
	RateLimit   int   // max requests per second, 0 means unlimited

	Modified        bool // regenerate the large file with fresh content
	ReplaceOriginal bool // write the last download over the staged original
}
