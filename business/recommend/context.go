package recommend

import "time"

// Time-of-day buckets shared by the context builder and the contextual scorer.
const (
	BucketNight     = "night"
	BucketMorning   = "morning"
	BucketAfternoon = "afternoon"
	BucketEvening   = "evening"
)

// RequestContext is the request-time situation the strategies score against.
// It is built fresh per call and never persisted.
type RequestContext struct {
	SessionID string // required, drives experiment bucketing
	UserID    uint   // 0 = anonymous

	Now        time.Time
	TimeBucket string // derived: night/morning/afternoon/evening
	DayOfWeek  time.Weekday
	Weekend    bool

	Weather        string // optional: "cold", "rainy", "hot", ...
	Device         string // optional: "mobile", "desktop"
	Segment        string // optional user segment label
	CartItemIDs    []uint64
	HistoryItemIDs []uint64
}

// NewRequestContext derives the time buckets from now; optional fields are
// filled in by the caller before scoring.
func NewRequestContext(sessionID string, now time.Time) RequestContext {
	dow := now.Weekday()
	return RequestContext{
		SessionID:  sessionID,
		Now:        now,
		TimeBucket: computeTimeBucket(now),
		DayOfWeek:  dow,
		Weekend:    dow == time.Saturday || dow == time.Sunday,
	}
}

func computeTimeBucket(t time.Time) string {
	h := t.Hour()
	switch {
	case h < 6:
		return BucketNight
	case h < 12:
		return BucketMorning
	case h < 18:
		return BucketAfternoon
	default:
		return BucketEvening
	}
}

// asMap flattens the context for event logging / debug output.
func (rctx RequestContext) asMap() map[string]any {
	out := map[string]any{
		"session_id":  rctx.SessionID,
		"time_bucket": rctx.TimeBucket,
		"dow":         int(rctx.DayOfWeek),
		"weekend":     rctx.Weekend,
		"event_time":  rctx.Now.Format(time.RFC3339),
	}
	if rctx.UserID != 0 {
		out["user_id"] = rctx.UserID
	}
	if rctx.Weather != "" {
		out["weather"] = rctx.Weather
	}
	if rctx.Device != "" {
		out["device"] = rctx.Device
	}
	if rctx.Segment != "" {
		out["segment"] = rctx.Segment
	}
	return out
}
