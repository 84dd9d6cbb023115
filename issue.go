package scsslint

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string     `json:"FromLinter"`  // "deprecated-variables"
	Text        string     `json:"Text"`        // "The variable `next-blue` is deprecated. ..."
	Severity    string     `json:"Severity"`    // "", "warning", "error"
	SourceLines []string   `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos   `json:"Pos"`         // File location
	LineRange   *LineRange `json:"LineRange"`   // Lines spanned by the offending node
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "app/assets/stylesheets/buttons.scss"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, start of the offending value)
}

// LineRange specifies a range of lines
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// DefaultSeverity is used for rules without a configured severity.
const DefaultSeverity = SeverityWarning

// validSeverity reports whether s is one of the severity constants or "info".
func validSeverity(s string) bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo, "info":
		return true
	}
	return false
}
