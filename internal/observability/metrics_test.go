package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordActivityMutation(t *testing.T) {
	before := testutil.ToFloat64(activityMutations.WithLabelValues("activity.created"))
	RecordActivityMutation("activity.created")
	assert.Equal(t, before+1, testutil.ToFloat64(activityMutations.WithLabelValues("activity.created")))
}

func TestRecordActivityCompleted_IgnoraCero(t *testing.T) {
	ts := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	RecordActivityCompleted(ts)
	RecordActivityCompleted(time.Time{})
	assert.Equal(t, float64(ts.Unix()), testutil.ToFloat64(lastCompletedGauge))
}

func TestRecordLogin(t *testing.T) {
	before := testutil.ToFloat64(loginAttempts.WithLabelValues("invalid"))
	RecordLogin("invalid")
	assert.Equal(t, before+1, testutil.ToFloat64(loginAttempts.WithLabelValues("invalid")))
}
