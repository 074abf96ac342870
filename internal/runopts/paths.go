package runopts

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"os"
	"strings"

	"github.com/ariel-frischer/courgette/internal/selection"
	"github.com/google/uuid"
)

// Session is shared by every worker of one run.
type Session struct {
	// ID is unique per run.
	ID string
	// TempDir is the root of worker report and rerun files. It always ends with a
	// path separator.
	TempDir string
}

// NewSession creates a session with a fresh id rooted at the OS temp directory.
func NewSession() Session {
	return Session{ID: uuid.NewString(), TempDir: TempDirectory(os.TempDir())}
}

// TempDirectory returns dir with a trailing path separator.
func TempDirectory(dir string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir
	}
	return dir + string(os.PathSeparator)
}

// Identity names one worker for file-path purposes only.
type Identity struct {
	SessionID          string
	FeatureFingerprint uint32
	InstanceID         uint32
}

// ReportStem is the worker's report path without extension.
func (id Identity) ReportStem(tempDir string) string {
	return fmt.Sprintf("%s%s_thread_report_%d_%d", tempDir, id.SessionID, id.FeatureFingerprint, id.InstanceID)
}

// RerunFile is the worker's rerun file. Two workers on the same feature get different
// files.
func (id Identity) RerunFile(tempDir string) string {
	return fmt.Sprintf("%s%s_rerun_%d_%d.txt", tempDir, id.SessionID, id.FeatureFingerprint, id.InstanceID)
}

// Fingerprinter is implemented by features that carry their own identity hash.
type Fingerprinter interface {
	Fingerprint() uint32
}

// Fingerprint returns the feature's own fingerprint when it has one, otherwise the
// FNV-1a hash of its URI.
func Fingerprint(feature selection.Feature) uint32 {
	if f, ok := feature.(Fingerprinter); ok {
		return f.Fingerprint()
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(feature.URI()))
	return h.Sum32()
}

// newInstanceID draws the per-WorkerOptionSet disambiguator.
func newInstanceID() uint32 {
	id := uuid.New()
	return binary.BigEndian.Uint32(id[:4])
}

// ResourcePath strips the scheme from a feature URI, so
// "classpath:features/orders.feature" becomes "features/orders.feature".
// Values without a scheme are returned unchanged.
func ResourcePath(uri string) string {
	scheme, rest, ok := strings.Cut(uri, ":")
	if !ok || !isScheme(scheme) {
		return uri
	}
	return rest
}

// isScheme reports whether s is a URI scheme. Single letters are rejected so Windows
// drive letters are not mistaken for one.
func isScheme(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// ReportDataDir is the directory holding aggregated report data.
func ReportDataDir(reportTargetDir string) string {
	return reportTargetDir + "/courgette-report/data"
}

// ReportJSON is the aggregation JSON report every run writes.
func ReportJSON(reportTargetDir string) string {
	return fmt.Sprintf("%s/report.json", ReportDataDir(reportTargetDir))
}

// AggregateRerunFile is the rerun file of a whole-suite run when none is declared.
func AggregateRerunFile(reportTargetDir string) string {
	return fmt.Sprintf("%s/courgette-rerun.txt", reportTargetDir)
}
