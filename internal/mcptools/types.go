package mcptools

// ListEventsInput is the input schema for the list_events MCP tool.
type ListEventsInput struct {
	Days *int `json:"days,omitempty" jsonschema:"Signed day count: 0 is the rest of today, 7 the coming week, -1 since the start of yesterday. Defaults to 7."`
}

// ListEventsOutput is the output schema for the list_events MCP tool.
type ListEventsOutput struct {
	Summary string        `json:"summary"`
	From    string        `json:"from"`
	To      string        `json:"to"`
	Events  []EventResult `json:"events"`
}

// EventResult is one listed event or repeat occurrence.
type EventResult struct {
	Title      string `json:"title"`
	Time       string `json:"time"`
	Location   string `json:"location,omitempty"`
	Repeat     int    `json:"repeat,omitempty"`
	Occurrence bool   `json:"occurrence"`
}
