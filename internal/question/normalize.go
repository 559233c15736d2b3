package question

import (
	"strconv"
	"strings"
)

// PlaceholderExplanation is substituted when a raw record carries no
// explanation. Views rely on explanations never being blank.
const PlaceholderExplanation = "Explanation not added yet."

// RawRecord is a loosely-typed question record as delivered by the
// provider. Source files were assembled from several scrapes, so the
// same logical field appears under different names.
type RawRecord map[string]any

// Candidate raw field names per logical field, in priority order.
var (
	idFields     = []string{"id", "number", "geometry_number"}
	optionFields = []string{"options", "choices"}
	imageFields  = []string{"referenceImage", "reference_image"}
)

// Normalize converts an ordered sequence of raw records into canonical
// Questions. Input order is preserved exactly; it is the navigation
// order for the topic.
func Normalize(records []RawRecord, topicID string) []Question {
	questions := make([]Question, 0, len(records))
	for i, rec := range records {
		questions = append(questions, normalizeOne(rec, topicID, i))
	}
	return questions
}

func normalizeOne(rec RawRecord, topicID string, pos int) Question {
	q := Question{
		ID:             resolveID(rec, pos),
		Text:           CleanText(rec.stringField("question")),
		Answer:         rec.stringField("answer"),
		Explanation:    CleanText(rec.stringField("explanation")),
		TopicID:        topicID,
		ReferenceImage: rec.firstString(imageFields),
	}

	opts := rec.resolveOptions()
	if rec.stringField("type") == "numeric" || len(opts) == 0 {
		q.Kind = KindFreeResponse
		q.Options = nil
	} else {
		q.Kind = KindMultipleChoice
		q.Options = opts
	}

	if q.Explanation == "" {
		q.Explanation = PlaceholderExplanation
	}
	return q
}

// resolveID takes the first present, non-null identifier field; records
// lacking all of them get their 1-based position in the source array.
func resolveID(rec RawRecord, pos int) int {
	for _, f := range idFields {
		v, ok := rec[f]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case string:
			if id, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				return id
			}
		}
	}
	return pos + 1
}

// resolveOptions returns the cleaned option list from the first option
// field that is present, or nil.
func (r RawRecord) resolveOptions() []string {
	for _, f := range optionFields {
		raw, ok := r[f].([]any)
		if !ok {
			continue
		}
		opts := make([]string, 0, len(raw))
		for _, o := range raw {
			s, _ := o.(string)
			opts = append(opts, CleanText(s))
		}
		return opts
	}
	return nil
}

func (r RawRecord) stringField(name string) string {
	s, _ := r[name].(string)
	return s
}

func (r RawRecord) firstString(fields []string) string {
	for _, f := range fields {
		if s, ok := r[f].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
