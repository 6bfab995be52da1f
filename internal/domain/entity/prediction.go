package entity

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Sentiment represents one of the two fixed sentiment classes
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// Valid returns true if the sentiment is one of the two known classes
func (s Sentiment) Valid() bool {
	return s == SentimentPositive || s == SentimentNegative
}

// ConfidencePrecision is the number of decimal places applied to the
// confidence both when it is persisted and when it is rendered, so a
// retrieved prediction never shows a different value than the original
// response for the same row.
const ConfidencePrecision = 4

// RoundConfidence rounds a raw model score to ConfidencePrecision decimals
func RoundConfidence(score float64) float64 {
	const shift = 1e4
	return math.Round(score*shift) / shift
}

// Prediction represents one persisted inference result
type Prediction struct {
	ID         uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	Sentiment  Sentiment `json:"sentiment" gorm:"type:varchar(10);not null"`
	Confidence float64   `json:"confidence" gorm:"type:decimal(5,4);not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for GORM
func (Prediction) TableName() string {
	return "predictions"
}

// NewPrediction creates a new Prediction. The input text is kept verbatim;
// the confidence is rounded here, before persistence, so the stored value
// and the response value are always the same.
func NewPrediction(text string, sentiment Sentiment, confidence float64) *Prediction {
	return &Prediction{
		Text:       text,
		Sentiment:  sentiment,
		Confidence: RoundConfidence(confidence),
	}
}

// RenderedConfidence formats the confidence with fixed decimal precision
func (p *Prediction) RenderedConfidence() string {
	return strconv.FormatFloat(p.Confidence, 'f', ConfidencePrecision, 64)
}

// Summary renders the "text-sentiment-confidence" string. It is a pure
// function of the stored fields and is never persisted itself.
func (p *Prediction) Summary() string {
	return fmt.Sprintf("%s-%s-%s", p.Text, p.Sentiment, p.RenderedConfidence())
}
