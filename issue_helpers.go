package iso19115

// IssueAt creates an Issue at the given path with provided code, message and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p PathRef, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

// IssueSink receives soft issues as they are produced.
type IssueSink func(Issue)

// Collector accumulates issues and forwards each one to an optional sink.
type Collector struct {
	issues Issues
	sink   IssueSink
}

// NewCollector returns a Collector forwarding to sink (which may be nil).
func NewCollector(sink IssueSink) *Collector { return &Collector{sink: sink} }

// Add records the issues.
func (c *Collector) Add(more ...Issue) {
	for _, it := range more {
		c.issues = append(c.issues, it)
		if c.sink != nil {
			c.sink(it)
		}
	}
}

// Issues returns a copy of the recorded issues.
func (c *Collector) Issues() Issues {
	if len(c.issues) == 0 {
		return nil
	}
	return append(Issues(nil), c.issues...)
}
