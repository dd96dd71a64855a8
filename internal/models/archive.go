package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResultSource indicates how an archived result entered the system
type ResultSource string

const (
	ResultSourceUpstream ResultSource = "UPSTREAM"
	ResultSourceAdmin    ResultSource = "ADMIN"
)

// ArchivedResult is a region's draw result persisted for history queries.
// One document per (region, drawDate) pair.
type ArchivedResult struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Region    Region             `bson:"region" json:"region"`
	DrawDate  string             `bson:"drawDate" json:"drawDate"` // YYYY-MM-DD
	Result    RegionResult       `bson:"result" json:"result"`
	Source    ResultSource       `bson:"source" json:"source"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
