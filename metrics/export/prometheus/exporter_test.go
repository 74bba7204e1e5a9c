package prometheus

import (
	"net/http/httptest"
	"strings"
	"testing"

	dashgate "github.com/fluxboard/dashgate"
)

type fakeSource struct {
	snapshot dashgate.MetricsSnapshot
	dropped  uint64
}

func (f *fakeSource) MetricsSnapshot() dashgate.MetricsSnapshot { return f.snapshot }
func (f *fakeSource) AuditDropped() uint64                      { return f.dropped }

func TestRenderCounters(t *testing.T) {
	src := &fakeSource{
		snapshot: dashgate.MetricsSnapshot{
			Counters: map[dashgate.MetricID]uint64{
				dashgate.MetricLoginSuccess: 3,
				dashgate.MetricLoginFailure: 1,
			},
		},
		dropped: 2,
	}

	out := NewExporterFromSource(src).Render()

	for _, want := range []string{
		"# TYPE dashgate_login_success_total counter",
		"dashgate_login_success_total 3",
		"dashgate_login_failure_total 1",
		"dashgate_audit_dropped_total 2",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmptySource(t *testing.T) {
	src := &fakeSource{snapshot: dashgate.MetricsSnapshot{Counters: map[dashgate.MetricID]uint64{}}}

	if out := NewExporterFromSource(src).Render(); out != "" {
		t.Fatalf("empty source rendered output:\n%s", out)
	}
}

func TestRenderNilExporter(t *testing.T) {
	var p *Exporter
	if out := p.Render(); out != "" {
		t.Fatalf("nil exporter rendered output: %q", out)
	}
}

func TestHandlerContentType(t *testing.T) {
	src := &fakeSource{dropped: 1}
	w := httptest.NewRecorder()

	NewExporterFromSource(src).Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Fatalf("Content-Type = %q", got)
	}
	if !strings.Contains(w.Body.String(), "dashgate_audit_dropped_total 1") {
		t.Fatalf("handler body missing dropped counter:\n%s", w.Body.String())
	}
}
