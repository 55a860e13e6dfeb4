package schema

// Entity kinds. Each kind maps to one MongoDB collection of the same name.
const (
	KindUser         = "user"
	KindAvailability = "therapistavailability"
	KindBooking      = "bookingrequest"
	KindMessage      = "message"
	KindJournal      = "journalentry"
)

// FieldType is the semantic type of a schema field.
type FieldType int

const (
	String FieldType = iota
	Email
	Int
	Bool
	StringList
)

func (t FieldType) String() string {
	switch t {
	case String:
		return "string"
	case Email:
		return "email"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case StringList:
		return "list[string]"
	}
	return "unknown"
}

// Field declares one field of an entity kind. Fields with neither a Default
// nor Optional set are required. Min/Max are inclusive bounds for Int fields.
// Enum lists the values a field is expected to hold; it is informational
// (surfaced by the /schema endpoint) and not enforced structurally — closed
// enumerations are applied per write path as business rules.
type Field struct {
	Name     string
	Type     FieldType
	Optional bool
	Default  interface{}
	Min      *int
	Max      *int
	Enum     []string
}

// Schema is the declared shape of one entity kind. Pure data, no behavior.
type Schema struct {
	Kind   string
	Fields []Field
}

// Registry holds all entity schemas, fixed at startup.
type Registry struct {
	order   []string
	schemas map[string]Schema
}

func NewRegistry(schemas ...Schema) *Registry {
	r := &Registry{schemas: make(map[string]Schema, len(schemas))}
	for _, s := range schemas {
		if _, dup := r.schemas[s.Kind]; !dup {
			r.order = append(r.order, s.Kind)
		}
		r.schemas[s.Kind] = s
	}
	return r
}

// Describe returns the schema for a kind.
func (r *Registry) Describe(kind string) (Schema, error) {
	s, ok := r.schemas[kind]
	if !ok {
		return Schema{}, UnknownKindError{Kind: kind}
	}
	return s, nil
}

// All returns every registered schema in registration order.
func (r *Registry) All() []Schema {
	out := make([]Schema, 0, len(r.order))
	for _, kind := range r.order {
		out = append(out, r.schemas[kind])
	}
	return out
}

func bound(n int) *int { return &n }

// Default returns the registry for the five TheraMatch entity kinds.
func Default() *Registry {
	return NewRegistry(
		Schema{Kind: KindUser, Fields: []Field{
			{Name: "role", Type: String, Enum: []string{"client", "therapist"}},
			{Name: "name", Type: String},
			{Name: "email", Type: Email},
			{Name: "photo_url", Type: String, Optional: true},
			{Name: "bio", Type: String, Optional: true},
			{Name: "specialties", Type: StringList},
			{Name: "modalities", Type: StringList},
			{Name: "languages", Type: StringList},
			{Name: "location", Type: String, Optional: true},
			{Name: "virtual", Type: Bool, Default: true},
			{Name: "in_person", Type: Bool, Default: false},
			{Name: "fee_min", Type: Int, Optional: true},
			{Name: "fee_max", Type: Int, Optional: true},
			{Name: "years_experience", Type: Int, Optional: true},
			{Name: "certifications", Type: StringList},
		}},
		Schema{Kind: KindAvailability, Fields: []Field{
			{Name: "therapist_id", Type: String},
			// 0=Monday .. 6=Sunday
			{Name: "weekday", Type: Int, Min: bound(0), Max: bound(6)},
			{Name: "time_ranges", Type: StringList},
			{Name: "virtual", Type: Bool, Default: true},
			{Name: "in_person", Type: Bool, Default: false},
		}},
		Schema{Kind: KindBooking, Fields: []Field{
			{Name: "therapist_id", Type: String},
			{Name: "client_name", Type: String},
			{Name: "client_email", Type: Email},
			{Name: "note", Type: String, Optional: true},
			{Name: "preferred_times", Type: StringList},
			{Name: "status", Type: String, Default: "pending", Enum: []string{"pending", "accepted", "declined", "completed"}},
		}},
		Schema{Kind: KindMessage, Fields: []Field{
			{Name: "therapist_id", Type: String},
			{Name: "client_email", Type: Email},
			{Name: "from_email", Type: Email},
			{Name: "to_email", Type: Email},
			{Name: "content", Type: String},
			{Name: "thread_id", Type: String, Optional: true},
		}},
		Schema{Kind: KindJournal, Fields: []Field{
			{Name: "client_email", Type: Email},
			{Name: "title", Type: String},
			{Name: "content", Type: String},
			{Name: "mood", Type: String, Optional: true},
		}},
	)
}
