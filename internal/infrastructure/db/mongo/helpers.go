package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
)

// setter accumulates a $set document from optional patch fields.
type setter bson.M

func (s setter) str(key string, v *string) {
	if v != nil {
		s[key] = *v
	}
}

func (s setter) float(key string, v *float64) {
	if v != nil {
		s[key] = *v
	}
}

func (s setter) integer(key string, v *int) {
	if v != nil {
		s[key] = *v
	}
}

func (s setter) update() bson.M {
	return bson.M{"$set": bson.M(s)}
}
