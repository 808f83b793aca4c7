package metrics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"verbose-log/internal/console"
	"verbose-log/internal/verboselog"
)

func TestMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"MessagesTotal", MessagesTotal},
		{"ClassificationsTotal", ClassificationsTotal},
		{"AppInfo", AppInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestLogObserverRecordsOutcomes(t *testing.T) {
	rec := console.NewRecorder()
	logger := verboselog.New(
		verboselog.WithConsole(rec),
		verboselog.WithLocation(verboselog.StaticLocation("https://www.example.com/")),
		verboselog.WithObserver(NewLogObserver()),
	)

	emitted := MessagesTotal.WithLabelValues("line", "error", "production", "emitted")
	suppressed := MessagesTotal.WithLabelValues("line", "info", "production", "suppressed_policy")
	unknown := MessagesTotal.WithLabelValues("table", "unknown", "production", "unknown_level")
	disabled := MessagesTotal.WithLabelValues("line", "critical", "unknown", "suppressed_disabled")
	production := ClassificationsTotal.WithLabelValues("production")

	beforeEmitted := testutil.ToFloat64(emitted)
	beforeSuppressed := testutil.ToFloat64(suppressed)
	beforeUnknown := testutil.ToFloat64(unknown)
	beforeDisabled := testutil.ToFloat64(disabled)
	beforeProduction := testutil.ToFloat64(production)

	logger.Log("boom", verboselog.LevelError, "")
	logger.Log("hello", verboselog.LevelInfo, "")
	logger.Table([]string{"a"}, verboselog.Level("loud"), "")
	logger.SetEnabled(false)
	logger.Log("off", verboselog.LevelCritical, "")

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"emitted", testutil.ToFloat64(emitted), beforeEmitted + 1},
		{"suppressed_policy", testutil.ToFloat64(suppressed), beforeSuppressed + 1},
		{"unknown_level", testutil.ToFloat64(unknown), beforeUnknown + 1},
		{"suppressed_disabled", testutil.ToFloat64(disabled), beforeDisabled + 1},
		{"classifications", testutil.ToFloat64(production), beforeProduction + 3},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if rec.Len() != 1 {
		t.Errorf("expected exactly one emitted line, got %d", rec.Len())
	}
}

func TestInitializeMetrics(t *testing.T) {
	InitializeMetrics()

	// 2 kinds x 5 levels x (1 disabled + 2 envs x 2 outcomes) + 2 kinds x 2 envs unknown_level
	if got := testutil.CollectAndCount(MessagesTotal); got < 54 {
		t.Errorf("MessagesTotal has %d series after InitializeMetrics, want at least 54", got)
	}
	if got := testutil.CollectAndCount(ClassificationsTotal); got < 2 {
		t.Errorf("ClassificationsTotal has %d series, want at least 2", got)
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("1.2.3", "abc123", "go1.25")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.2.3", "abc123", "go1.25")); got != 1 {
		t.Errorf("AppInfo = %v, want 1", got)
	}
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "verbose_log_test_total",
		Help: "Test counter",
	})
	reg.MustRegister(counter)
	counter.Add(3)

	var buf bytes.Buffer
	if err := WriteText(&buf, reg); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# HELP verbose_log_test_total Test counter",
		"# TYPE verbose_log_test_total counter",
		"verbose_log_test_total 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
