package domain

// VariableSlot names one of the semantic colour slots of a preset. Slots are
// emitted in declaration order.
type VariableSlot int

const (
	AccentColor VariableSlot = iota
	AccentBgColor
	AccentFgColor
	DestructiveColor
	DestructiveBgColor
	DestructiveFgColor
	SuccessColor
	SuccessBgColor
	SuccessFgColor
	WarningColor
	WarningBgColor
	WarningFgColor
	ErrorColor
	ErrorBgColor
	ErrorFgColor
	WindowBgColor
	WindowFgColor
	ViewBgColor
	ViewFgColor
	HeaderbarBgColor
	HeaderbarFgColor
	HeaderbarBorderColor
	HeaderbarBackdropColor
	HeaderbarShadeColor
	HeaderbarDarkerShadeColor
	CardBgColor
	CardFgColor
	CardShadeColor
	DialogBgColor
	DialogFgColor
	PopoverBgColor
	PopoverFgColor
	PopoverShadeColor
	ShadeColor
	ScrollbarOutlineColor
	ThumbnailBgColor
	ThumbnailFgColor
	SidebarBgColor
	SidebarFgColor
	SidebarBackdropColor
	SidebarShadeColor
	SecondarySidebarBgColor
	SecondarySidebarFgColor
	SecondarySidebarBackdropColor
	SecondarySidebarShadeColor

	variableSlotCount
)

const (
	fgDarkText = "rgba(0, 0, 0, 0.8)"
	lightShade = "rgba(0, 0, 0, 0.07)"
	darkShade  = "rgba(0, 0, 0, 0.36)"
)

// built-in libadwaita values
var variableTable = slotTable{
	AccentColor:                   {"accent_color", byMode("#3584e4", "#78aeed")},
	AccentBgColor:                 {"accent_bg_color", byMode("#3584e4", "#3584e4")},
	AccentFgColor:                 {"accent_fg_color", byMode("#ffffff", "#ffffff")},
	DestructiveColor:              {"destructive_color", byMode("#c01c28", "#ff7b63")},
	DestructiveBgColor:            {"destructive_bg_color", byMode("#e01b24", "#c01c28")},
	DestructiveFgColor:            {"destructive_fg_color", byMode("#ffffff", "#ffffff")},
	SuccessColor:                  {"success_color", byMode("#26a269", "#8ff0a4")},
	SuccessBgColor:                {"success_bg_color", byMode("#2ec27e", "#26a269")},
	SuccessFgColor:                {"success_fg_color", byMode("#ffffff", "#ffffff")},
	WarningColor:                  {"warning_color", byMode("#ae7b03", "#f8e45c")},
	WarningBgColor:                {"warning_bg_color", byMode("#e5a50a", "#cd9309")},
	WarningFgColor:                {"warning_fg_color", byMode(fgDarkText, fgDarkText)},
	ErrorColor:                    {"error_color", byMode("#c01c28", "#ff7b63")},
	ErrorBgColor:                  {"error_bg_color", byMode("#e01b24", "#c01c28")},
	ErrorFgColor:                  {"error_fg_color", byMode("#ffffff", "#ffffff")},
	WindowBgColor:                 {"window_bg_color", byMode("#fafafa", "#242424")},
	WindowFgColor:                 {"window_fg_color", byMode(fgDarkText, "#ffffff")},
	ViewBgColor:                   {"view_bg_color", byMode("#ffffff", "#1e1e1e")},
	ViewFgColor:                   {"view_fg_color", byMode(fgDarkText, "#ffffff")},
	HeaderbarBgColor:              {"headerbar_bg_color", byMode("#ebebeb", "#303030")},
	HeaderbarFgColor:              {"headerbar_fg_color", byMode(fgDarkText, "#ffffff")},
	HeaderbarBorderColor:          {"headerbar_border_color", byMode(fgDarkText, "#ffffff")},
	HeaderbarBackdropColor:        {"headerbar_backdrop_color", byMode("@window_bg_color", "@window_bg_color")},
	HeaderbarShadeColor:           {"headerbar_shade_color", byMode(lightShade, darkShade)},
	HeaderbarDarkerShadeColor:     {"headerbar_darker_shade_color", byMode("rgba(0, 0, 0, 0.12)", "rgba(0, 0, 0, 0.9)")},
	CardBgColor:                   {"card_bg_color", byMode("#ffffff", "rgba(255, 255, 255, 0.08)")},
	CardFgColor:                   {"card_fg_color", byMode(fgDarkText, "#ffffff")},
	CardShadeColor:                {"card_shade_color", byMode(lightShade, darkShade)},
	DialogBgColor:                 {"dialog_bg_color", byMode("#fafafa", "#383838")},
	DialogFgColor:                 {"dialog_fg_color", byMode(fgDarkText, "#ffffff")},
	PopoverBgColor:                {"popover_bg_color", byMode("#ffffff", "#383838")},
	PopoverFgColor:                {"popover_fg_color", byMode(fgDarkText, "#ffffff")},
	PopoverShadeColor:             {"popover_shade_color", byMode(lightShade, darkShade)},
	ShadeColor:                    {"shade_color", byMode(lightShade, darkShade)},
	ScrollbarOutlineColor:         {"scrollbar_outline_color", byMode("#ffffff", "rgba(0, 0, 0, 0.5)")},
	ThumbnailBgColor:              {"thumbnail_bg_color", byMode("#ffffff", "#383838")},
	ThumbnailFgColor:              {"thumbnail_fg_color", byMode(fgDarkText, "#ffffff")},
	SidebarBgColor:                {"sidebar_bg_color", byMode("#ebebeb", "#303030")},
	SidebarFgColor:                {"sidebar_fg_color", byMode(fgDarkText, "#ffffff")},
	SidebarBackdropColor:          {"sidebar_backdrop_color", byMode("#f2f2f2", "#2a2a2a")},
	SidebarShadeColor:             {"sidebar_shade_color", byMode(lightShade, darkShade)},
	SecondarySidebarBgColor:       {"secondary_sidebar_bg_color", byMode("#f3f3f3", "#2a2a2a")},
	SecondarySidebarFgColor:       {"secondary_sidebar_fg_color", byMode(fgDarkText, "#ffffff")},
	SecondarySidebarBackdropColor: {"secondary_sidebar_backdrop_color", byMode("#f6f6f6", "#272727")},
	SecondarySidebarShadeColor:    {"secondary_sidebar_shade_color", byMode(lightShade, darkShade)},
}

// Slug is the lowercase-underscore name used verbatim in generated output.
func (s VariableSlot) Slug() string {
	if s < 0 || s >= variableSlotCount {
		return ""
	}
	return variableTable[s].slug
}

// Default returns the built-in value of the slot.
func (s VariableSlot) Default() Variable {
	if s < 0 || s >= variableSlotCount {
		return nil
	}
	return variableTable[s].def
}

// VariableSlots returns every slot in emission order.
func VariableSlots() []VariableSlot {
	slots := make([]VariableSlot, variableSlotCount)
	for i := range slots {
		slots[i] = VariableSlot(i)
	}
	return slots
}

// VariableSlotBySlug looks a slot up by its output name.
func VariableSlotBySlug(slug string) (VariableSlot, bool) {
	i := variableTable.index(slug)
	if i < 0 {
		return 0, false
	}
	return VariableSlot(i), true
}

// Variables holds one Variable per slot.
type Variables struct {
	values [variableSlotCount]Variable
}

func DefaultVariables() Variables {
	var v Variables
	variableTable.defaults(v.values[:])
	return v
}

// Get returns the slot value, or the built-in default when unset.
func (v *Variables) Get(slot VariableSlot) Variable {
	if slot < 0 || slot >= variableSlotCount {
		return nil
	}
	if value := v.values[slot]; value != nil {
		return value
	}
	return variableTable[slot].def
}

func (v *Variables) Set(slot VariableSlot, value Variable) {
	if slot < 0 || slot >= variableSlotCount {
		return
	}
	v.values[slot] = value
}

// Each calls fn for every slot in emission order.
func (v *Variables) Each(fn func(slot VariableSlot, value Variable)) {
	for i := VariableSlot(0); i < variableSlotCount; i++ {
		fn(i, v.Get(i))
	}
}

func (v Variables) MarshalJSON() ([]byte, error) {
	return variableTable.encode(v.values[:])
}

func (v *Variables) UnmarshalJSON(data []byte) error {
	return variableTable.decode(data, v.values[:])
}

func (v *Variables) Validate() error {
	return variableTable.validate(v.values[:])
}
