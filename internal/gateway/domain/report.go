package domain

// Report is the gallery-facing shape of an economic report. The
// backend's raw rows carry full content; the gateway trims them down
// to what the gallery needs.
type Report struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Abstract string   `json:"abstract"`
	Topics   []string `json:"topics"`
	CoverURL string   `json:"coverUrl"`
	PDFURL   string   `json:"pdfUrl"`
	Sources  []Source `json:"sources"`
}

// Source identifies a statistics provider a report draws on.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ReportFilter carries the gallery's filter query. Topics is the raw
// comma-separated value; the backend owns its interpretation.
type ReportFilter struct {
	Search string
	Topics string
	From   string
	To     string
}
