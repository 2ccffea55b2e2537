package resolver

// AttemptOutcome classifies how a single backend attempt ended.
type AttemptOutcome string

const (
	OutcomeNoResult AttemptOutcome = "no-result"
	OutcomeError    AttemptOutcome = "error"
	OutcomeTimeout  AttemptOutcome = "timeout"
)

// Attempt is one entry in the diagnostics log built during a resolution.
type Attempt struct {
	Backend string         `json:"backend"`
	Outcome AttemptOutcome `json:"outcome"`
	Detail  string         `json:"detail,omitempty"`
}

// Status discriminates the resolution result union.
type Status string

const (
	StatusResolved  Status = "resolved"
	StatusExhausted Status = "exhausted"
	StatusTimedOut  Status = "timed_out"
)

// Resolved carries a direct audio URL ready for download.
type Resolved struct {
	AudioURL          string `json:"audio_url"`
	SuggestedFilename string `json:"suggested_filename"`
	BitrateKbps       int    `json:"bitrate_kbps,omitempty"`
}

// ManualHint tells the caller how to finish a download by hand when no
// backend produced a direct URL.
type ManualHint struct {
	ToolURL  string `json:"tool_url"`
	WatchURL string `json:"watch_url"`
	Message  string `json:"message"`
}

// Resolution is the single result of a resolve call: exactly one status,
// with Resolved populated only for StatusResolved and ManualHint only for
// terminal failures that have a manual path.
type Resolution struct {
	Status     Status      `json:"status"`
	Resolved   *Resolved   `json:"resolved,omitempty"`
	Attempts   []Attempt   `json:"attempts,omitempty"`
	ManualHint *ManualHint `json:"manual_hint,omitempty"`
}
