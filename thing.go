package ranger

// Thing is the identity a device carries: a unique id, a model, and a
// human-friendly name
type Thing struct {
	id    string
	model string
	name  string
}

func NewThing(id, model, name string) Thing {
	if !ValidId(id) || !ValidId(model) || !ValidId(name) {
		panic("something invalid: id = \"" + id + "\", model = \"" +
			model + "\", name = \"" + name + "\"")
	}
	return Thing{id: id, model: model, name: name}
}

func (t *Thing) Id() string    { return t.id }
func (t *Thing) Model() string { return t.model }
func (t *Thing) Name() string  { return t.name }

func (t *Thing) String() string {
	return "[Id: " + t.id + ", Model: " + t.model + ", Name: " + t.name + "]"
}

// A valid ID is a non-empty string with only [a-z], [A-Z], [0-9], dash or
// underscore characters.
func ValidId(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') &&
			(r < 'A' || r > 'Z') &&
			(r < '0' || r > '9') &&
			(r != '_') && (r != '-') {
			return false
		}
	}
	return len(s) > 0
}
