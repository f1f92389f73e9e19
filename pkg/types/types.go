package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type FeatureUpdated struct {
	ID         string    `json:"id"`
	Collection string    `json:"collection"`
	Feature    any       `json:"feature,omitempty"`
	Tenant     string    `json:"tenant"`
	Timestamp  time.Time `json:"timestamp"`
}

func (f *FeatureUpdated) Body() []byte {
	b, _ := json.Marshal(f)
	return b
}
func (f *FeatureUpdated) ContentType() string {
	return fmt.Sprintf("application/vnd.diwise.%s+json", strings.ToLower(f.Collection))
}
func (f *FeatureUpdated) TopicName() string {
	return "feature.updated"
}
