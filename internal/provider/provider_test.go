package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/prepdeck/internal/question"
	"github.com/abhisek/prepdeck/internal/topic"
)

func TestEmbeddedBank_AllTopicsLoad(t *testing.T) {
	p := NewFileProvider("")
	ctx := context.Background()

	for _, tp := range topic.All() {
		recs, err := p.Questions(ctx, tp.ID)
		if err != nil {
			t.Errorf("topic %s: %v", tp.ID, err)
			continue
		}
		if len(recs) == 0 {
			t.Errorf("topic %s: empty bank", tp.ID)
		}

		// Every embedded record must survive normalization with a
		// non-empty text and a non-blank explanation.
		for i, q := range question.Normalize(recs, tp.ID) {
			if q.Text == "" {
				t.Errorf("topic %s record %d: empty text", tp.ID, i)
			}
			if q.Explanation == "" {
				t.Errorf("topic %s record %d: blank explanation", tp.ID, i)
			}
		}
	}
}

func TestQuestions_UnknownTopic(t *testing.T) {
	p := NewFileProvider("")
	if _, err := p.Questions(context.Background(), "calculus"); err == nil {
		t.Error("expected error for unrecognized topic")
	}
}

func TestQuestions_DataDirOverride(t *testing.T) {
	dir := t.TempDir()
	override := `[{"id": 99, "question": "override question", "answer": "A", "options": ["x", "y"]}]`
	if err := os.WriteFile(filepath.Join(dir, "algebra.json"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewFileProvider(dir)
	recs, err := p.Questions(context.Background(), topic.Algebra)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("len = %d, want 1", len(recs))
	}

	qs := question.Normalize(recs, topic.Algebra)
	if qs[0].ID != 99 || qs[0].Text != "override question" {
		t.Errorf("unexpected override record: %+v", qs[0])
	}
}

func TestQuestions_MissingOverrideFallsBack(t *testing.T) {
	p := NewFileProvider(t.TempDir())
	recs, err := p.Questions(context.Background(), topic.Geometry)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(recs) == 0 {
		t.Error("expected embedded bank fallback for missing override file")
	}
}

func TestQuestions_SchemaRejection(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"not an array":     `{"question": "x", "answer": "A"}`,
		"missing question": `[{"answer": "A"}]`,
		"missing answer":   `[{"question": "x"}]`,
		"bad options type": `[{"question": "x", "answer": "A", "options": "not-a-list"}]`,
		"not JSON":         `{{{`,
	}

	for name, payload := range cases {
		if err := os.WriteFile(filepath.Join(dir, "algebra.json"), []byte(payload), 0o644); err != nil {
			t.Fatal(err)
		}
		p := NewFileProvider(dir)
		if _, err := p.Questions(context.Background(), topic.Algebra); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}
