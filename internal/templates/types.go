// Package templates plans, renders and writes the files generated for each archetype.
package templates

// ProjectData is the template context for the app, plugin and generator archetypes.
type ProjectData struct {
	// Name is the normalized package name (e.g., "my-app").
	Name string

	// Folder is the project main folder relative to the project root.
	Folder string

	Description string
	Homepage    string

	AuthorName  string
	AuthorEmail string
	AuthorURL   string

	// AddName is Name without the "donejs-" prefix, as used by "donejs add".
	AddName string

	// License is the SPDX identifier written to LICENSE and the manifest.
	License string

	// Year is stamped into the license text.
	Year int
}

// ComponentData is the template context for component modlets and single-file components.
type ComponentData struct {
	// Root is the "../" prefix from the component directory back to the project root.
	Root string

	// Path is the directory the component is written to.
	Path string

	// Tag is the custom element name (e.g., "restaurant-list").
	Tag string

	// CamelCase is Tag in camelCase (e.g., "restaurantList").
	CamelCase string

	// TagCase is Tag in UpperCamelCase (e.g., "RestaurantList").
	TagCase string

	// Name is the short component name (e.g., "list").
	Name string

	// App is the project package name.
	App string

	// Module is the full module identifier (e.g., "~/restaurant/list").
	Module string
}

// ModelData is the template context for supermodels.
type ModelData struct {
	Name      string
	ClassName string
	URL       string
	IDProp    string
}

// Entry is one planned emission: which template, where to, with what context.
type Entry struct {
	// TemplateID names the template (e.g., "app/src/app.js").
	TemplateID string

	// Destination is the output path relative to the project root.
	Destination string

	// Context is the value the template is executed with.
	Context any
}

// File is a rendered entry ready to be written.
type File struct {
	Destination string
	Content     []byte
}
