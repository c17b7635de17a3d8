package models

import (
	"fmt"
	"time"
)

// Domain models matching the database schema in db/migrations/0001_init.sql
// and the client queue schema in internal/store.

// Dimension is one of the six self-assessment axes.
type Dimension string

const (
	DimEnergy         Dimension = "energy"
	DimSleep          Dimension = "sleep"
	DimStructure      Dimension = "structure"
	DimInitiation     Dimension = "initiation"
	DimEngagement     Dimension = "engagement"
	DimSustainability Dimension = "sustainability"
)

// Dimensions lists the six axes in canonical order. Tie-breaking in the
// scoring engine depends on this order, do not reorder.
var Dimensions = []Dimension{
	DimEnergy,
	DimSleep,
	DimStructure,
	DimInitiation,
	DimEngagement,
	DimSustainability,
}

// Category is a drift severity band derived from the lag score.
type Category string

const (
	CategoryAligned  Category = "aligned"
	CategoryMild     Category = "mild"
	CategoryModerate Category = "moderate"
	CategoryHeavy    Category = "heavy"
	CategoryCritical Category = "critical"
)

// Feedback is a user's reaction to a previously shown tip.
type Feedback string

const (
	FeedbackHelpful     Feedback = "helpful"
	FeedbackDidntTry    Feedback = "didnt_try"
	FeedbackNotRelevant Feedback = "not_relevant"
)

// Valid reports whether f is one of the three known feedback values.
func (f Feedback) Valid() bool {
	switch f {
	case FeedbackHelpful, FeedbackDidntTry, FeedbackNotRelevant:
		return true
	}
	return false
}

// Answers holds the six 1-5 self-assessment values of one check-in.
type Answers struct {
	Energy         int `json:"energy"`
	Sleep          int `json:"sleep"`
	Structure      int `json:"structure"`
	Initiation     int `json:"initiation"`
	Engagement     int `json:"engagement"`
	Sustainability int `json:"sustainability"`
}

// Get returns the answer value for a dimension. Unknown dimensions panic:
// a caller holding a Dimension that is not one of the six constants has
// already broken the contract.
func (a Answers) Get(d Dimension) int {
	switch d {
	case DimEnergy:
		return a.Energy
	case DimSleep:
		return a.Sleep
	case DimStructure:
		return a.Structure
	case DimInitiation:
		return a.Initiation
	case DimEngagement:
		return a.Engagement
	case DimSustainability:
		return a.Sustainability
	}
	panic(fmt.Sprintf("models: unknown dimension %q", d))
}

// Validate checks that every answer is an integer in [1,5]. Scoring assumes
// validated input, so callers must reject invalid answers before scoring.
func (a Answers) Validate() error {
	for _, d := range Dimensions {
		v := a.Get(d)
		if v < 1 || v > 5 {
			return fmt.Errorf("answer %s out of range: %d (want 1-5)", d, v)
		}
	}
	return nil
}

// Tip is a structured suggestion tied to a (dimension, category) pair.
// Tips are selected, never mutated.
type Tip struct {
	Focus      string `json:"focus"`
	Constraint string `json:"constraint"`
	Choice     string `json:"choice"`
}

// TipFeedbackEntry is one append-only record of tip feedback. Entries are
// never mutated or deleted; the tip engine consumes them read-only.
type TipFeedbackEntry struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Dimension Dimension `json:"dimension" db:"dimension"`
	Category  Category  `json:"category" db:"category"`
	Feedback  Feedback  `json:"feedback" db:"feedback"`
	CreatedAt time.Time `json:"created_at" db:"created"`
}

// CheckinResult is the derived, immutable output of scoring one check-in.
type CheckinResult struct {
	ID              int64     `json:"id,omitempty"`
	Score           int       `json:"score"`
	Category        Category  `json:"category"`
	WeakestDim      Dimension `json:"weakest_dimension"`
	Tip             Tip       `json:"tip"`
	AdaptiveMessage string    `json:"adaptive_message,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// Checkin is a persisted check-in row on the server side.
type Checkin struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	Answers        Answers   `json:"answers"`
	ReflectionNote string    `json:"reflection_note,omitempty" db:"reflection_note"`
	Score          int       `json:"score" db:"score"`
	Category       Category  `json:"category" db:"category"`
	WeakestDim     Dimension `json:"weakest_dimension" db:"weakest_dimension"`
	Created        int64     `json:"created" db:"created"`
}

// QueuedCheckin is a locally persisted, not-yet-submitted check-in. The local
// store owns it exclusively until it is deleted after a confirmed submission.
type QueuedCheckin struct {
	ID             string  `json:"id" db:"id"`
	Answers        Answers `json:"answers"`
	ReflectionNote string  `json:"reflection_note,omitempty" db:"reflection_note"`
	EnqueuedAt     int64   `json:"enqueued_at" db:"enqueued_at"`
	Synced         bool    `json:"synced" db:"synced"`
}

// User is an account row.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"password_hash,omitempty" db:"password_hash"`
	Created      int64  `json:"created" db:"created"`
}
