package types

// CheckRequest asks for a synchronous validation of one document.
type CheckRequest struct {
	HTML    string `json:"html"`
	Subject string `json:"subject,optional"`
	MJML    bool   `json:"mjml,optional"`
}

// CheckResponse carries the full pipeline outcome.
type CheckResponse struct {
	IsValid        bool           `json:"is_valid"`
	SanitizedHTML  string         `json:"sanitized_html"`
	Issues         []string       `json:"issues"`
	Fixes          []string       `json:"fixes"`
	Score          int            `json:"score"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
	PlainText      string         `json:"plain_text"`
	Deliverability int            `json:"deliverability_score"`
}

// ScoreBreakdown mirrors the four scoring categories.
type ScoreBreakdown struct {
	Structure     int `json:"structure"`
	Compatibility int `json:"compatibility"`
	Accessibility int `json:"accessibility"`
	Content       int `json:"content"`
}

// EnqueueCheckRequest queues a document for asynchronous checking.
type EnqueueCheckRequest struct {
	HTML    string `json:"html"`
	Subject string `json:"subject,optional"`
	MJML    bool   `json:"mjml,optional"`
}

// EnqueueCheckResponse returns the report id to poll.
type EnqueueCheckResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ScoreRequest asks for a quality score only.
type ScoreRequest struct {
	HTML string `json:"html"`
}

// ScoreResponse carries the score and its breakdown.
type ScoreResponse struct {
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// OptimizeRequest asks for client-compatibility rewriting.
type OptimizeRequest struct {
	HTML string `json:"html"`
}

// OptimizeResponse carries the rewritten HTML.
type OptimizeResponse struct {
	HTML string `json:"html"`
	Size int    `json:"size"`
}

// TextRequest asks for the plain-text rendition.
type TextRequest struct {
	HTML string `json:"html"`
}

// TextResponse carries the extracted text.
type TextResponse struct {
	Text string `json:"text"`
}

// DeliverabilityRequest asks for a deliverability assessment.
type DeliverabilityRequest struct {
	HTML    string `json:"html"`
	Subject string `json:"subject,optional"`
}

// DeliverabilityResponse carries the deliverability score and findings.
type DeliverabilityResponse struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// SpamRequest asks for a spam-risk assessment.
type SpamRequest struct {
	HTML    string `json:"html"`
	Subject string `json:"subject,optional"`
}

// SpamResponse carries the spam score and classification.
type SpamResponse struct {
	Score           int      `json:"score"`
	Risk            string   `json:"risk"`
	Factors         []string `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

// GetReportRequest fetches one stored report by id.
type GetReportRequest struct {
	ID string `path:"id"`
}

// ReportResponse is a stored validation report.
type ReportResponse struct {
	ID            string         `json:"id"`
	Source        string         `json:"source"`
	Status        string         `json:"status"`
	IsValid       bool           `json:"is_valid"`
	SanitizedHTML string         `json:"sanitized_html,omitempty"`
	PlainText     string         `json:"plain_text,omitempty"`
	Issues        []string       `json:"issues"`
	Fixes         []string       `json:"fixes"`
	Score         int            `json:"score"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
	Error         string         `json:"error,omitempty"`
	CreatedAt     string         `json:"created_at"`
}

// ListReportsRequest filters stored reports.
type ListReportsRequest struct {
	Status string `form:"status,optional"`
	Limit  int    `form:"limit,default=50"`
}

// ListReportsResponse is a page of reports without HTML bodies.
type ListReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
	Count   int              `json:"count"`
}

// StatsResponse summarizes report counts by status.
type StatsResponse struct {
	Stats map[string]int `json:"stats"`
	Total int            `json:"total"`
}
