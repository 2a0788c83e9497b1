package view

var proficiencyLabels = []string{"", "Beginner", "Intermediate", "Advanced", "Expert", "Master"}

// ProficiencyLabel maps a 1-5 skill level to its display name. Levels
// outside the scale render as Unknown rather than panicking on bad data.
func ProficiencyLabel(level int) string {
	if level < 1 || level >= len(proficiencyLabels) {
		return "Unknown"
	}
	return proficiencyLabels[level]
}

// ProficiencyPercent converts a 1-5 level to a 0-100 bar width.
func ProficiencyPercent(level int) int {
	if level < 0 {
		return 0
	}
	if level > 5 {
		return 100
	}
	return level * 20
}
