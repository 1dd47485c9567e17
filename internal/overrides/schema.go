package overrides

// Document is one parsed override document.
type Document struct {
	// Source identifies where the document came from (usually its path).
	Source string `yaml:"-"`

	// Version of the document schema.
	Version string `yaml:"version,omitempty"`

	Namespaces []Namespace `yaml:"namespaces"`
}

// Namespace groups class overrides and optionally remaps the namespace itself.
type Namespace struct {
	// Name is the source namespace (required).
	Name string `yaml:"name"`

	// DisplayName, when set, renames the namespace in emitted output.
	DisplayName *string `yaml:"display_name,omitempty"`

	Classes []Class `yaml:"classes,omitempty"`
}

// Class overrides the emission of one type.
type Class struct {
	// Name is the type name relative to the namespace (required).
	Name string `yaml:"name"`

	// DisplayName is the custom emitted name.
	DisplayName *string `yaml:"display_name,omitempty"`

	// SingleConstructor consolidates all source constructors into one.
	SingleConstructor bool `yaml:"single_ctor,omitempty"`

	Properties []Property `yaml:"properties,omitempty"`
}

// Property supplies inline accessor templates for one property.
type Property struct {
	// Name of the declared property (required).
	Name string `yaml:"name"`

	Get *Template `yaml:"get,omitempty"`
	Set *Template `yaml:"set,omitempty"`
}

// Template is opaque accessor text substituted by the emitter.
type Template struct {
	Text string
}

// TemplateText returns a pointer to the template text, or nil when t is nil.
func (t *Template) TemplateText() *string {
	if t == nil {
		return nil
	}

	s := t.Text

	return &s
}

// NewTemplate is a convenience constructor for documents built in code.
func NewTemplate(text string) *Template {
	return &Template{Text: text}
}

// Counts returns the number of namespace, class and property entries.
func (d *Document) Counts() (namespaces, classes, properties int) {
	namespaces = len(d.Namespaces)

	for i := range d.Namespaces {
		classes += len(d.Namespaces[i].Classes)

		for j := range d.Namespaces[i].Classes {
			properties += len(d.Namespaces[i].Classes[j].Properties)
		}
	}

	return namespaces, classes, properties
}
