package models

// SessionStatus represents the status of an analysis session.
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusAnalyzing SessionStatus = "analyzing"
	SessionStatusComplete  SessionStatus = "complete"
	SessionStatusError     SessionStatus = "error"
)

// AnalysisSession represents one batch analysis job.
type AnalysisSession struct {
	ID               string        `json:"id"`
	FileIDs          []string      `json:"fileIds"`
	Status           SessionStatus `json:"status"`
	Progress         float64       `json:"progress"` // 0-100
	DocumentCount    int           `json:"documentCount,omitempty"`
	ObligationCount  int           `json:"obligationCount,omitempty"`
	ProcessingTimeMs int64         `json:"processingTimeMs,omitempty"`
	StartTime        int64         `json:"startTime,omitempty"` // Unix ms
	EndTime          int64         `json:"endTime,omitempty"`   // Unix ms
	Error            string        `json:"error,omitempty"`
}

// NewAnalysisSession creates a new AnalysisSession in pending status.
func NewAnalysisSession(id string, fileIDs []string) *AnalysisSession {
	return &AnalysisSession{
		ID:       id,
		FileIDs:  fileIDs,
		Status:   SessionStatusPending,
		Progress: 0,
	}
}
