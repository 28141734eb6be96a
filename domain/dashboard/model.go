// Package dashboard holds the request-scoped value types served by the
// mental health trends dashboard.
package dashboard

// TimeSeriesPoint is one day's aggregated post volume and emotion scores
type TimeSeriesPoint struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Anxiety float64 `json:"anxiety"`
	Sadness float64 `json:"sadness"`
	Joy     float64 `json:"joy"`
}

// TopicTrend is a labeled subject with its mention volume and relative change
type TopicTrend struct {
	Topic     string  `json:"topic"`
	ChangePct float64 `json:"changePct"`
	Mentions  int     `json:"mentions"`
}

// EmotionShare is the fraction of content attributed to an emotion category.
// Shares are not required to sum to 1.
type EmotionShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GraphNode is a user in the interaction graph
type GraphNode struct {
	ID        string  `json:"id"`
	Degree    int     `json:"degree"`
	Sentiment float64 `json:"sentiment"`
}

// GraphEdge is a weighted interaction between two users
type GraphEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// Graph is the social graph section of the dashboard
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphEdge `json:"links"`
}

// Meta echoes the resolved request parameters
type Meta struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Platform string `json:"platform"`
}

// Dashboard is the complete payload of the dashboard endpoint
type Dashboard struct {
	TimeSeries []TimeSeriesPoint `json:"timeSeries"`
	Topics     []TopicTrend      `json:"topics"`
	Emotions   []EmotionShare    `json:"emotions"`
	Graph      Graph             `json:"graph"`
	Meta       Meta              `json:"meta"`
}

// NodeIndex maps node IDs to their position in Nodes
func (g Graph) NodeIndex() map[string]int {
	index := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n.ID] = i
	}
	return index
}
