// internal/crash/reporter.go
package crash

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"time"
)

// CrashReport represents a structured crash report
type CrashReport struct {
	Timestamp    time.Time
	ErrorMessage string
	StackTrace   string
	Goroutine    string
	Component    string
	Extra        map[string]string
}

// Reporter writes crash reports for fatal startup errors and panics.
type Reporter struct {
	reportsDir string
	now        func() time.Time
}

func NewReporter(reportsDir string) *Reporter {
	if reportsDir == "" {
		reportsDir = "crash_reports"
	}
	return &Reporter{
		reportsDir: reportsDir,
		now:        time.Now,
	}
}

// Dir returns the directory reports are written to.
func (r *Reporter) Dir() string { return r.reportsDir }

// Report writes a report for err and returns the file path.
func (r *Reporter) Report(component string, err error, extra map[string]string) (string, error) {
	return r.write(&CrashReport{
		Timestamp:    r.now(),
		ErrorMessage: err.Error(),
		StackTrace:   string(debug.Stack()),
		Component:    component,
		Goroutine:    getGoroutineID(),
		Extra:        extra,
	})
}

// reported marks a panic value that already has a crash report, so nested
// deferred recoveries re-panic without writing a second one.
type reported struct {
	value interface{}
}

func (r reported) String() string { return fmt.Sprintf("%v", r.value) }

// RecoverWithCrashReport writes a crash report for a panic and re-panics so
// the process still dies with a non-zero status. It must be deferred
// directly.
func (r *Reporter) RecoverWithCrashReport(component string, extra map[string]string) {
	err := recover()
	if err == nil {
		return
	}
	if _, ok := err.(reported); ok {
		panic(err)
	}

	report := &CrashReport{
		Timestamp:    r.now(),
		ErrorMessage: fmt.Sprintf("%v", err),
		StackTrace:   string(debug.Stack()),
		Component:    component,
		Goroutine:    getGoroutineID(),
		Extra:        extra,
	}

	filePath, werr := r.write(report)
	if werr != nil {
		fmt.Fprintf(os.Stderr, "CRASH in %s: %v (report not written: %v)\n", component, err, werr)
	} else {
		fmt.Fprintf(os.Stderr, "CRASH in %s: %v\nCrash report written to: %s\n", component, err, filePath)
	}
	panic(reported{value: err})
}

func getGoroutineID() string {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	lines := strings.Split(string(buf[:n]), "\n")
	if len(lines) > 0 {
		return strings.TrimSpace(lines[0])
	}
	return "unknown-goroutine"
}

func (r *Reporter) write(report *CrashReport) (string, error) {
	if err := os.MkdirAll(r.reportsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create crash report dir: %w", err)
	}

	filename := fmt.Sprintf("crash_%s_%s.txt",
		report.Timestamp.Format("20060102_150405"),
		sanitizeFilename(report.Component))
	filePath := filepath.Join(r.reportsDir, filename)

	var b strings.Builder
	fmt.Fprintf(&b, "Crash Report\n")
	fmt.Fprintf(&b, "============\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", report.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "Component: %s\n", report.Component)
	fmt.Fprintf(&b, "Goroutine: %s\n", report.Goroutine)
	fmt.Fprintf(&b, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&b, "Error: %s\n\n", report.ErrorMessage)

	if len(report.Extra) > 0 {
		keys := make([]string, 0, len(report.Extra))
		for k := range report.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintf(&b, "Additional Information\n")
		fmt.Fprintf(&b, "=====================\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "%s: %s\n", k, report.Extra[k])
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "Stack Trace\n")
	fmt.Fprintf(&b, "===========\n")
	fmt.Fprintf(&b, "%s\n", report.StackTrace)

	if err := os.WriteFile(filePath, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write crash report: %w", err)
	}
	return filePath, nil
}

func sanitizeFilename(name string) string {
	return strings.NewReplacer(" ", "_", ":", "_", "/", "_", "\\", "_").Replace(name)
}
