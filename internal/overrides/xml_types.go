package overrides

import (
	"encoding/xml"
)

// xmlAssembly mirrors the XML document shape. Lower-case "name" is the
// source identity and capitalized "Name" the display name.
type xmlAssembly struct {
	XMLName    xml.Name       `xml:"assembly"`
	Namespaces []xmlNamespace `xml:"namespace"`
}

type xmlNamespace struct {
	Name        string     `xml:"name,attr"`
	DisplayName *string    `xml:"Name,attr"`
	Classes     []xmlClass `xml:"class"`
}

type xmlClass struct {
	Name         string        `xml:"name,attr"`
	DisplayName  *string       `xml:"Name,attr"`
	IsSingleCtor bool          `xml:"IsSingleCtor,attr,omitempty"`
	Properties   []xmlProperty `xml:"property"`
}

type xmlProperty struct {
	Name string       `xml:"name,attr"`
	Get  *xmlTemplate `xml:"get"`
	Set  *xmlTemplate `xml:"set"`
}

// xmlTemplate is a get or set element. A missing Template attribute means
// no override, not an empty one.
type xmlTemplate struct {
	Template *string `xml:"Template,attr"`
}

func (a *xmlAssembly) document() *Document {
	doc := &Document{Namespaces: make([]Namespace, 0, len(a.Namespaces))}

	for _, xn := range a.Namespaces {
		ns := Namespace{Name: xn.Name, DisplayName: xn.DisplayName}

		for _, xc := range xn.Classes {
			cls := Class{
				Name:              xc.Name,
				DisplayName:       xc.DisplayName,
				SingleConstructor: xc.IsSingleCtor,
			}

			for _, xp := range xc.Properties {
				cls.Properties = append(cls.Properties, Property{
					Name: xp.Name,
					Get:  xp.Get.template(),
					Set:  xp.Set.template(),
				})
			}

			ns.Classes = append(ns.Classes, cls)
		}

		doc.Namespaces = append(doc.Namespaces, ns)
	}

	return doc
}

func (t *xmlTemplate) template() *Template {
	if t == nil || t.Template == nil {
		return nil
	}

	return &Template{Text: *t.Template}
}

func fromDocument(doc *Document) *xmlAssembly {
	a := &xmlAssembly{}

	for _, ns := range doc.Namespaces {
		xn := xmlNamespace{Name: ns.Name, DisplayName: ns.DisplayName}

		for _, cls := range ns.Classes {
			xc := xmlClass{Name: cls.Name, DisplayName: cls.DisplayName, IsSingleCtor: cls.SingleConstructor}

			for _, p := range cls.Properties {
				xp := xmlProperty{Name: p.Name}
				xp.Get = toXMLTemplate(p.Get)
				xp.Set = toXMLTemplate(p.Set)

				xc.Properties = append(xc.Properties, xp)
			}

			xn.Classes = append(xn.Classes, xc)
		}

		a.Namespaces = append(a.Namespaces, xn)
	}

	return a
}

func toXMLTemplate(t *Template) *xmlTemplate {
	if t == nil {
		return nil
	}

	text := t.Text

	return &xmlTemplate{Template: &text}
}
