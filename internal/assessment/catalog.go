package assessment

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed definitions/*.json
var definitionFS embed.FS

//go:embed paths.json
var pathsJSON []byte

// Catalog is the read-only content source for assessment definitions.
type Catalog struct {
	defs  map[string]*Definition
	order []string
	paths map[string][]string
}

// LoadCatalog parses and validates the bundled definitions and the learning
// path recommendation table. Every definition must pass the JSON schema and
// carry in-range answer keys and unique question ids.
func LoadCatalog() (*Catalog, error) {
	defSchema, err := compileSchema("assessment-definition", definitionSchema)
	if err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(definitionFS, "definitions")
	if err != nil {
		return nil, fmt.Errorf("read definitions dir: %w", err)
	}

	c := &Catalog{defs: make(map[string]*Definition)}
	for _, e := range entries {
		raw, err := definitionFS.ReadFile("definitions/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		def, err := ParseDefinition(raw, defSchema)
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", e.Name(), err)
		}
		if _, dup := c.defs[def.ID]; dup {
			return nil, fmt.Errorf("duplicate assessment id %q", def.ID)
		}
		c.defs[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	sort.Strings(c.order)

	pathSchema, err := compileSchema("path-map", pathMapSchema)
	if err != nil {
		return nil, err
	}
	var parsed any
	if err := json.Unmarshal(pathsJSON, &parsed); err != nil {
		return nil, fmt.Errorf("parse paths.json: %w", err)
	}
	if err := pathSchema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("validate paths.json: %w", err)
	}
	if err := json.Unmarshal(pathsJSON, &c.paths); err != nil {
		return nil, fmt.Errorf("decode paths.json: %w", err)
	}

	return c, nil
}

// ParseDefinition decodes raw JSON into a Definition, validating it against
// the given compiled schema plus the structural checks the schema can't
// express (unique question ids, answer index within options range).
func ParseDefinition(raw []byte, schema *jsonschema.Schema) (*Definition, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var def Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	seen := make(map[string]bool)
	for _, q := range def.Questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %q: answer_index %d out of range", q.ID, q.AnswerIndex)
		}
	}
	return &def, nil
}

// DefinitionSchema compiles and returns the assessment definition schema.
// Exposed for callers that parse definitions from sources other than the
// bundled catalog.
func DefinitionSchema() (*jsonschema.Schema, error) {
	return compileSchema("assessment-definition", definitionSchema)
}

// Get returns the definition with the given id, or nil.
func (c *Catalog) Get(id string) *Definition {
	return c.defs[id]
}

// All returns every definition ordered by id.
func (c *Catalog) All() []*Definition {
	out := make([]*Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

// ByCategory returns definitions in the given category, ordered by id.
func (c *Catalog) ByCategory(category string) []*Definition {
	var out []*Definition
	for _, id := range c.order {
		if c.defs[id].Category == category {
			out = append(out, c.defs[id])
		}
	}
	return out
}

// PathMap returns the skill → recommended learning path table. The map is
// shared; callers must not mutate it.
func (c *Catalog) PathMap() map[string][]string {
	return c.paths
}

// compileSchema compiles an inline schema definition.
func compileSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	// The jsonschema compiler wants a clean any-typed document.
	b, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", name, err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, fmt.Errorf("parse %s schema: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := compiler.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add %s schema: %w", name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", name, err)
	}
	return compiled, nil
}
