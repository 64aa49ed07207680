package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(lookups.WithLabelValues(OutcomeMatched))
	RecordLookup(OutcomeMatched)
	assert.Equal(t, before+1, testutil.ToFloat64(lookups.WithLabelValues(OutcomeMatched)))

	before = testutil.ToFloat64(mutations.WithLabelValues(OpPut))
	RecordMutation(OpPut, 3)
	assert.Equal(t, before+1, testutil.ToFloat64(mutations.WithLabelValues(OpPut)))
	assert.Equal(t, float64(3), testutil.ToFloat64(entries))

	SetEntries(1)
	assert.Equal(t, float64(1), testutil.ToFloat64(entries))
}

func TestRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	RecordEvent("message")

	router := NewRouter(reg)

	t.Run("healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `autoresponder_events_total{kind="message"}`)
	})

	t.Run("register twice fails", func(t *testing.T) {
		assert.Error(t, Register(reg))
	})
}
