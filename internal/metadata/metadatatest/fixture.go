// Package metadatatest provides small metadata images for tests.
package metadatatest

import (
	"bridge-meta/internal/metadata"
)

// AppModels returns an image with a handful of types in App.Models and
// App.Views, including a generic type and a shadowed property name.
func AppModels() *metadata.Image {
	img, err := metadata.NewImage("App",
		metadata.TypeDef{
			Namespace: "App.Models",
			Name:      "Widget",
			Kind:      metadata.KindClass,
			Properties: []metadata.PropertyDef{
				{Name: "Color", HasGetter: true, HasSetter: true},
				{Name: "Size", HasGetter: true},
			},
		},
		metadata.TypeDef{
			Namespace: "App.Models",
			Name:      "Gadget",
			Kind:      metadata.KindClass,
			Properties: []metadata.PropertyDef{
				// Shadowed member: the first declaration wins.
				{Name: "Label", HasGetter: true},
				{Name: "Label", HasGetter: true, HasSetter: true},
			},
		},
		metadata.TypeDef{
			Namespace: "App.Models",
			Name:      "List`1",
			Kind:      metadata.KindClass,
			Properties: []metadata.PropertyDef{
				{Name: "Count", HasGetter: true},
			},
		},
		metadata.TypeDef{
			Namespace: "App.Models",
			Name:      "Shade",
			Kind:      metadata.KindEnum,
		},
		metadata.TypeDef{
			Namespace: "App.Views",
			Name:      "Panel",
			Kind:      metadata.KindClass,
			Properties: []metadata.PropertyDef{
				{Name: "Title", HasGetter: true, HasSetter: true},
			},
		},
	)
	if err != nil {
		panic(err)
	}

	return img
}
