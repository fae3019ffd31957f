// Package runner drives a generation run end to end: classpath assembly,
// class-set resolution (explicit list plus discovery-by-scanning), and the
// per-class discover/emit/write loop.
//
// Runs are single-threaded and strictly ordered. The first fatal error stops
// the run; artifacts written by earlier tasks stay on disk. Nothing retries:
// a failure here means a configuration or environment defect the operator has
// to fix.
package runner
