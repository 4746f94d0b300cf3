package assessment

import (
	"strings"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(c.All()) < 2 {
		t.Fatalf("expected at least 2 bundled definitions, got %d", len(c.All()))
	}

	def := c.Get("go-fundamentals")
	if def == nil {
		t.Fatal("expected go-fundamentals definition")
	}
	if def.DurationSecs != 600 {
		t.Errorf("DurationSecs = %d, want 600", def.DurationSecs)
	}
	if len(def.Questions) == 0 {
		t.Fatal("expected questions")
	}
}

func TestCatalogByCategory(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	backend := c.ByCategory("backend")
	if len(backend) != 2 {
		t.Errorf("backend definitions = %d, want 2", len(backend))
	}
	for _, d := range backend {
		if d.Category != "backend" {
			t.Errorf("definition %s category = %q, want backend", d.ID, d.Category)
		}
	}

	if got := c.ByCategory("no-such-category"); len(got) != 0 {
		t.Errorf("expected no definitions, got %d", len(got))
	}
}

func TestCatalogPathMap(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	paths := c.PathMap()
	if len(paths) == 0 {
		t.Fatal("expected non-empty path map")
	}
	if len(paths["concurrency"]) == 0 {
		t.Error("expected recommendations for concurrency skill")
	}
}

func TestParseDefinition_SchemaRejections(t *testing.T) {
	schema, err := DefinitionSchema()
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "missing title",
			raw:  `{"id":"x","category":"c","duration_secs":60,"questions":[{"id":"q1","skill":"s","difficulty":"beginner","prompt":"p","options":["a","b"],"answer_index":0}]}`,
			want: "schema validation",
		},
		{
			name: "zero duration",
			raw:  `{"id":"x","title":"t","category":"c","duration_secs":0,"questions":[{"id":"q1","skill":"s","difficulty":"beginner","prompt":"p","options":["a","b"],"answer_index":0}]}`,
			want: "schema validation",
		},
		{
			name: "single option",
			raw:  `{"id":"x","title":"t","category":"c","duration_secs":60,"questions":[{"id":"q1","skill":"s","difficulty":"beginner","prompt":"p","options":["a"],"answer_index":0}]}`,
			want: "schema validation",
		},
		{
			name: "answer index out of range",
			raw:  `{"id":"x","title":"t","category":"c","duration_secs":60,"questions":[{"id":"q1","skill":"s","difficulty":"beginner","prompt":"p","options":["a","b"],"answer_index":5}]}`,
			want: "out of range",
		},
		{
			name: "duplicate question id",
			raw:  `{"id":"x","title":"t","category":"c","duration_secs":60,"questions":[{"id":"q1","skill":"s","difficulty":"beginner","prompt":"p","options":["a","b"],"answer_index":0},{"id":"q1","skill":"s","difficulty":"beginner","prompt":"p","options":["a","b"],"answer_index":1}]}`,
			want: "duplicate question id",
		},
		{
			name: "not JSON",
			raw:  `{nope`,
			want: "invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinition([]byte(tt.raw), schema)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestQuestionByID(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	def := c.Get("sql-essentials")
	if def == nil {
		t.Fatal("expected sql-essentials definition")
	}

	q := def.QuestionByID("sql-q2")
	if q == nil {
		t.Fatal("expected question sql-q2")
	}
	if q.Skill != "joins" {
		t.Errorf("skill = %q, want joins", q.Skill)
	}
	if def.QuestionByID("missing") != nil {
		t.Error("expected nil for unknown question id")
	}
}

func TestDefinitionSkills(t *testing.T) {
	def := &Definition{
		Questions: []Question{
			{ID: "a", Skill: "x"},
			{ID: "b", Skill: "y"},
			{ID: "c", Skill: "x"},
		},
	}
	skills := def.Skills()
	if len(skills) != 2 {
		t.Fatalf("skills = %v, want 2 distinct", skills)
	}
	if skills[0] != "x" || skills[1] != "y" {
		t.Errorf("skills = %v, want [x y] in question order", skills)
	}
}
