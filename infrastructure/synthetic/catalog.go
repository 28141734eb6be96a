package synthetic

import (
	"context"

	"mhtrends-backend/application/ports"
	"mhtrends-backend/domain/dashboard"
)

// DefaultTopics is the fixed topic trend list served by the prototype
var DefaultTopics = []dashboard.TopicTrend{
	{Topic: "exam stress", ChangePct: 0.22, Mentions: 420},
	{Topic: "job market anxiety", ChangePct: 0.12, Mentions: 320},
	{Topic: "sleep issues", ChangePct: 0.08, Mentions: 210},
	{Topic: "financial pressure", ChangePct: 0.05, Mentions: 150},
}

// DefaultEmotions is the fixed emotion distribution served by the prototype
var DefaultEmotions = []dashboard.EmotionShare{
	{Name: "sadness", Value: 0.38},
	{Name: "anger", Value: 0.12},
	{Name: "fear", Value: 0.18},
	{Name: "joy", Value: 0.10},
	{Name: "neutral", Value: 0.22},
}

// StaticCatalog serves constant topic and emotion lists regardless of
// date range or platform.
type StaticCatalog struct {
	topics   []dashboard.TopicTrend
	emotions []dashboard.EmotionShare
}

var (
	_ ports.TopicProvider   = (*StaticCatalog)(nil)
	_ ports.EmotionProvider = (*StaticCatalog)(nil)
)

// NewStaticCatalog creates a catalog over the default lists
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{topics: DefaultTopics, emotions: DefaultEmotions}
}

// FetchTopics returns a copy of the topic list
func (c *StaticCatalog) FetchTopics(ctx context.Context, req ports.DashboardRequest) ([]dashboard.TopicTrend, error) {
	out := make([]dashboard.TopicTrend, len(c.topics))
	copy(out, c.topics)
	return out, nil
}

// FetchEmotions returns a copy of the emotion list
func (c *StaticCatalog) FetchEmotions(ctx context.Context, req ports.DashboardRequest) ([]dashboard.EmotionShare, error) {
	out := make([]dashboard.EmotionShare, len(c.emotions))
	copy(out, c.emotions)
	return out, nil
}
