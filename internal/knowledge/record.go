// Package knowledge retrieves and filters attraction records from the
// vector store for downstream answer synthesis.
package knowledge

// Attribute keys carried in record payloads.
const (
	AttrAttractionName = "Attraction_name"
	AttrAdditionalInfo = "additional Information"
)

// Record is a retrieved knowledge record: the rendered document body, its
// stored attributes, and the similarity score assigned by the vector store.
type Record struct {
	Body       string
	Attributes map[string]interface{}
	Score      float64
}

// Name returns the attraction name attribute, or "" when absent or not a
// string.
func (r Record) Name() string {
	val, ok := r.Attributes[AttrAttractionName]
	if !ok {
		return ""
	}
	name, _ := val.(string)
	return name
}

// AdditionalInfo returns the raw additional-information attribute and
// whether it was present.
func (r Record) AdditionalInfo() (interface{}, bool) {
	val, ok := r.Attributes[AttrAdditionalInfo]
	return val, ok
}
