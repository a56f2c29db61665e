package domain

// ShellSlot names one of the colours the GNOME Shell templates consume.
type ShellSlot int

const (
	ShellBgColor ShellSlot = iota
	ShellFgColor
	ShellSystemBgColor
	ShellSelectedBgColor
	ShellSelectedFgColor
	ShellPanelBgColor
	ShellPanelFgColor
	ShellOsdBgColor
	ShellOsdFgColor
	ShellSystemFgColor

	shellSlotCount
)

var shellTable = slotTable{
	ShellBgColor:         {"bg_color", byMode("#ffffff", "#1e1e1e")},
	ShellFgColor:         {"fg_color", byMode(fgDarkText, "#ffffff")},
	ShellSystemBgColor:   {"system_bg_color", byMode("#fafafa", "#242424")},
	ShellSelectedBgColor: {"selected_bg_color", byMode("#3584e4", "#78aeed")},
	ShellSelectedFgColor: {"selected_fg_color", byMode("#ffffff", "#ffffff")},
	ShellPanelBgColor:    {"panel_bg_color", byMode("#f2f2f2", "#2a2a2a")},
	ShellPanelFgColor:    {"panel_fg_color", byMode(fgDarkText, "#ffffff")},
	ShellOsdBgColor:      {"osd_bg_color", byMode("#f2f2f2", "#2a2a2a")},
	ShellOsdFgColor:      {"osd_fg_color", byMode(fgDarkText, "#ffffff")},
	ShellSystemFgColor:   {"system_fg_color", byMode(fgDarkText, "#ffffff")},
}

func (s ShellSlot) Slug() string {
	if s < 0 || s >= shellSlotCount {
		return ""
	}
	return shellTable[s].slug
}

func ShellSlots() []ShellSlot {
	slots := make([]ShellSlot, shellSlotCount)
	for i := range slots {
		slots[i] = ShellSlot(i)
	}
	return slots
}

// ShellDefaults holds the shell template colours of a preset.
type ShellDefaults struct {
	values [shellSlotCount]Variable
}

func DefaultShell() ShellDefaults {
	var s ShellDefaults
	shellTable.defaults(s.values[:])
	return s
}

func (s *ShellDefaults) Get(slot ShellSlot) Variable {
	if slot < 0 || slot >= shellSlotCount {
		return nil
	}
	if value := s.values[slot]; value != nil {
		return value
	}
	return shellTable[slot].def
}

func (s *ShellDefaults) Set(slot ShellSlot, value Variable) {
	if slot < 0 || slot >= shellSlotCount {
		return
	}
	s.values[slot] = value
}

func (s *ShellDefaults) Each(fn func(slot ShellSlot, value Variable)) {
	for i := ShellSlot(0); i < shellSlotCount; i++ {
		fn(i, s.Get(i))
	}
}

func (s ShellDefaults) MarshalJSON() ([]byte, error) {
	return shellTable.encode(s.values[:])
}

func (s *ShellDefaults) UnmarshalJSON(data []byte) error {
	return shellTable.decode(data, s.values[:])
}

func (s *ShellDefaults) Validate() error {
	return shellTable.validate(s.values[:])
}
