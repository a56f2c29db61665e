package domain

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the preset document schema.
const SchemaID = "https://themesmith.dev/schema/preset.json"

// PresetSchema describes the preset file format.
func PresetSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Anonymous:                  true,
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
		Mapper:                     schemaFor,
	}

	s := r.Reflect(&Preset{})
	s.ID = SchemaID
	s.Title = "themesmith preset"
	s.Description = "Colour definitions for GTK and GNOME Shell themes"
	s.Required = []string{"name"}

	if custom, ok := s.Properties.Get("custom"); ok {
		legacy := *custom
		legacy.Description = "Deprecated spelling of custom"
		s.Properties.Set("custom_css", &legacy)
	}
	return s
}

var (
	variablesType = reflect.TypeOf(Variables{})
	shellType     = reflect.TypeOf(ShellDefaults{})
	paletteType   = reflect.TypeOf(Palette{})
	licenseType   = reflect.TypeOf(License(""))
)

func schemaFor(t reflect.Type) *jsonschema.Schema {
	switch t {
	case variablesType:
		return slotsSchema(variableTable, "Semantic colour slots")
	case shellType:
		return slotsSchema(shellTable, "GNOME Shell template colours")
	case paletteType:
		return paletteSchema()
	case licenseType:
		enum := make([]any, 0, len(Licenses()))
		for _, l := range Licenses() {
			enum = append(enum, string(l))
		}
		return &jsonschema.Schema{Type: "string", Enum: enum, Default: string(LicenseGPL3)}
	default:
		return nil
	}
}

func slotsSchema(table slotTable, description string) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	for _, slot := range table {
		props.Set(slot.slug, variableSchema())
	}
	return &jsonschema.Schema{
		Type:        "object",
		Description: description,
		Properties:  props,
	}
}

// variableSchema lists the four accepted value shapes.
func variableSchema() *jsonschema.Schema {
	str := func() *jsonschema.Schema { return &jsonschema.Schema{Type: "string"} }
	strMap := func() *jsonschema.Schema {
		return &jsonschema.Schema{Type: "object", AdditionalProperties: str(), Required: []string{DefaultKey}}
	}

	byMode := jsonschema.NewProperties()
	byMode.Set("light", str())
	byMode.Set("dark", str())

	byAccent := jsonschema.NewProperties()
	for _, name := range accentNames {
		byAccent.Set(name, str())
	}
	byAccent.Set(DefaultKey, str())

	byModeAccent := jsonschema.NewProperties()
	byModeAccent.Set("light", strMap())
	byModeAccent.Set("dark", strMap())

	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string", Description: "Constant colour"},
			{Type: "object", Description: "Colour per mode", Properties: byMode, Required: []string{"light", "dark"}},
			{Type: "object", Description: "Colour per accent", Properties: byAccent, Required: []string{DefaultKey}},
			{Type: "object", Description: "Colour per mode and accent", Properties: byModeAccent, Required: []string{"light", "dark"}},
		},
	}
}

func paletteSchema() *jsonschema.Schema {
	props := jsonschema.NewProperties()
	for _, name := range familyNames {
		props.Set(name, &jsonschema.Schema{
			Type:                 "object",
			AdditionalProperties: &jsonschema.Schema{Type: "string"},
		})
	}
	return &jsonschema.Schema{
		Type:        "object",
		Description: "Named colour families; absent families use the libadwaita shades",
		Properties:  props,
	}
}
